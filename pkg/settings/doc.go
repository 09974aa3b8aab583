// Package settings resolves the configuration of the bf client.
//
// Settings come from three layers, by increasing precedence:
//
//  - built-in defaults
//  - the profile section of the config file (config.yaml in the config directory)
//  - BLACKFYNN_* environment variables
//
// A config file looks like:
//
//	default_profile: lab
//	profiles:
//	  lab:
//	    api_host: https://api.blackfynn.io
//	    session_token: 8b1f...
//	    log_level: debug
//
// Profile names are case insensitive.
package settings
