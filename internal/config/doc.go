// Package config loads weekender-events settings from the environment.
//
// Every setting has a default, so an empty environment yields a working
// configuration. Command-line flags override what is loaded here.
package config
