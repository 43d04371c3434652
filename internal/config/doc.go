// Package config manages the makessl application configuration and the
// filesystem locations the setup pipeline works with.
//
// Configuration is stored in the user's home directory at
// ~/.config/makessl/config.yaml and remembers values the operator
// would otherwise re-enter on every run:
//
//	email: admin@example.com
//	nginx_dir: /opt/nginx/conf.d
//	tool: simp_le
//
// # Paths
//
// All home-derived locations (certificate directory, challenge
// directory, renewal script default) are collected in an explicit
// Paths value constructed once and passed into each component, rather
// than read from ambient process state. Tests construct Paths over a
// temporary directory.
//
// The nginx configuration directory resolves in precedence order:
// command-line flag, NGINX_CONF environment variable, saved
// configuration, built-in default /etc/nginx/conf.d.
//
// # Thread Safety
//
// Config operations are NOT thread-safe. Callers must implement their
// own synchronization if accessing Config from multiple goroutines.
package config
