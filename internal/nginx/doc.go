// Package nginx discovers candidate nginx configuration files and
// extracts the domains they serve.
//
// Discovery is read-only: the package never edits server
// configuration. It reports which files still lack the ACME challenge
// location (so the operator can add it by hand) and collects the
// hostnames declared by server_name directives.
//
// # Usage
//
//	scanner := nginx.NewScanner("/etc/nginx/conf.d")
//	files, err := scanner.Scan()
//	pending, err := scanner.Unmodified()
//
//	domains, err := nginx.Domains(files)
//
// Domains returns the sorted set of unique hostnames, independent of
// file order and with trailing statement terminators trimmed.
package nginx
