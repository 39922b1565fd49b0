// Package config loads the YAML configuration shared by mappers and the
// command-line tool.
//
//	name_matching: ordinal-ignore-case   # ordinal | ordinal-ignore-case | normalized
//	build:
//	  multiple_builds: false             # allow repeated Build calls
//	log:
//	  level: info                        # debug | info | warn | error
//	  format: text                       # text | json
//
// Every key is optional; Parse fills in the defaults shown above.
package config
