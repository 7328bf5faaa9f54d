/*
Package config provides an in-memory configuration store loaded from YAML or
JSON.

# Overview

Config wraps a nested map[string]any and implements typedconfig.Store. It does
no type conversion itself; wrap it in a typedconfig.Accessor for typed reads.

	cfg, err := config.FromFile("app.yaml")
	if err != nil {
	    return err
	}
	acc := typedconfig.New(cfg)
	port, err := acc.MandatoryInt("server.port")

# Keys

Keys are dotted paths. Given

	server:
	  port: 8080
	  hosts: [a, b]

the keys "server.port" and "server.hosts.1" resolve to 8080 and "b". A
top-level key containing dots is matched before any nested walk.

# Null and Absent

A key present with a null value reports (nil, true) from Lookup; a missing key
reports (nil, false). The typed accessor treats both the same way, but tools
such as Has can tell them apart.

# File Formats

FromFile picks the decoder by extension: .yaml, .yml, or .json. JSON integers
decode as int64 rather than float64.
*/
package config
