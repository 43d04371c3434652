// Package template renders the two nginx configuration snippets the
// operator pastes into their server blocks by hand: the ACME challenge
// location for port 80 and the TLS block for port 443. Snippets are
// embedded in the binary using go:embed and are only ever printed,
// never written into server configuration.
package template

import (
	"bytes"
	"embed"
	"fmt"
	"text/template"
)

//go:embed snippets/*.tmpl
var snippets embed.FS

// Data carries the directory paths referenced by the snippets.
type Data struct {
	ChallengeDir string
	CertsDir     string
}

// ChallengeBlock renders the location block serving the ACME challenge
// path from the given challenge directory.
func ChallengeBlock(challengeDir string) (string, error) {
	return render("challenge", Data{ChallengeDir: challengeDir})
}

// SSLBlock renders the TLS configuration block referencing the
// certificate artifacts in the given directory.
func SSLBlock(certsDir string) (string, error) {
	return render("ssl", Data{CertsDir: certsDir})
}

func render(name string, data Data) (string, error) {
	content, err := snippets.ReadFile(fmt.Sprintf("snippets/%s.tmpl", name))
	if err != nil {
		return "", fmt.Errorf("snippet not found: %s", name)
	}

	tmpl, err := template.New(name).Parse(string(content))
	if err != nil {
		return "", fmt.Errorf("failed to parse snippet %s: %w", name, err)
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("failed to render snippet %s: %w", name, err)
	}
	return buf.String(), nil
}
