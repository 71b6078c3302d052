/*
Package semtok turns classified BEM spans into LSP semantic tokens.

🎨 Semantic Tokens Overview:
---------------------------
An editor highlights class names by asking for semantic tokens. This package
bridges the bem scanner with the LSP wire format:

	Markup Text                 Editor
	     |                         ^
	     v                         |
	+----------+   spans    +-------------+
	|   @bem   | ---------> |   @semtok   |
	+----------+            +-------------+
	                              |
	                   +----------+----------+
	                   |                     |
	              Full File             Range-based
	               Tokens                 Tokens
	                   |                     |
	                   +----------+----------+
	                              |
	                        Encode (uint32 x5)

🔍 Token Types:
-------------
One token type per category, announced to the client through a Legend:

	block     -> class
	element   -> property
	modifier  -> enumMember
	js        -> function
	qa        -> decorator

The right-hand names are the defaults and can be replaced per category.
*/
package semtok
