// Package config loads the optional gyb.yml file that tunes the banner style,
// the replacements policy and logging:
//
//	banner:
//	  preset: swift
//	  comment_prefix: "//"
//	  extension: ".swift"
//	  attribution: "Generated by GYB"
//	replacements:
//	  policy: defer
//	log:
//	  level: info
//
// The commands find the file through the GYB_CONFIG environment variable.
package config
