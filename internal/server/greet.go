package server

import (
	"fmt"
	"io"
	"strings"
)

// GreetOptions configures the startup banner
type GreetOptions struct {
	ServiceName string
	Version     string
	Router      string
	Host        string
	Port        int
	DocsPath    string
	UI          bool
	Metrics     bool
	Store       string
}

// Greet prints the service banner with the useful URLs
func Greet(w io.Writer, opts GreetOptions) {
	rule := strings.Repeat("=", 60)
	fmt.Fprintln(w, rule)

	if opts.ServiceName != "" {
		fmt.Fprintf(w, "%s", opts.ServiceName)
		if opts.Version != "" {
			fmt.Fprintf(w, " v%s", opts.Version)
		}
		if opts.Router != "" {
			fmt.Fprintf(w, " (%s)", opts.Router)
		}
		fmt.Fprintln(w)
	}

	host := opts.Host
	if host == "" || host == "0.0.0.0" {
		host = "localhost"
	}
	base := fmt.Sprintf("http://%s:%d", host, opts.Port)

	fmt.Fprintf(w, "API:      %s/api\n", base)
	if opts.UI {
		fmt.Fprintf(w, "Form:     %s/\n", base)
	}
	if opts.DocsPath != "" {
		fmt.Fprintf(w, "Docs:     %s%s\n", base, opts.DocsPath)
	}
	if opts.Metrics {
		fmt.Fprintf(w, "Metrics:  %s/metrics\n", base)
	}
	if opts.Store != "" {
		fmt.Fprintf(w, "Usage:    %s store\n", opts.Store)
	}

	fmt.Fprintln(w, rule)
}
