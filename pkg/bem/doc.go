/*
Package bem finds and classifies BEM class names inside markup.

The scan runs in three stages over an immutable document:

	  markup text
	       |
	       v
	+--------------+   class="..." occurrences
	|   Locator    | --------------------------+
	+--------------+                           |
	                                           v
	                                   +--------------+
	                                   |  Extractor   |  class-name runs,
	                                   +--------------+  absolute offsets
	                                           |
	                                           v
	                                   +--------------+
	                                   |  Categorize  |  Block, Element,
	                                   +--------------+  Modifier, Js, Qa
	                                           |
	                                           v
	                                     []Span (ordered)

Categories follow first-match-wins rules:

	js-*        -> Js
	qa-*        -> Qa
	*--*        -> Modifier
	*__*        -> Element
	otherwise   -> Block

Everything here is a pure function of its input. Nothing is cached between
calls, so any number of goroutines may classify the same text at once.
*/
package bem
