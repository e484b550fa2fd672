// Package manifest provides the YAML sprite manifest: schema, parsing,
// validation and conversion into sprite descriptors.
//
// # Schema Overview
//
//	version: "1"
//	options:
//	  xml_declaration: false  # default true
//	  license: ""             # default Font Awesome Free notice; empty disables
//	icons:
//	  - fas/dice-one          # "prefix/name" shorthand
//	  - prefix: far
//	    name: bookmark
//	    params:
//	      symbol: rotated-bookmark  # or true
//	      title: Bookmark
//	      transform: {rotate: 90}
//	  - abstract:             # pre-rendered icon tree
//	      - tag: svg
//	        children:
//	          - tag: symbol
//	            attributes: {id: custom, viewBox: 0 0 16 16}
//
// # Symbol ids
//
// When icons is a sequence, ids are generated from each icon (or taken from
// params.symbol). When icons is a mapping, every key is the id of its icon
// and the mapping order is the order of the symbols in the sprite:
//
//	icons:
//	  dice: fas/dice-one
//	  bookmark: {prefix: far, name: bookmark}
package manifest
