// Package environment names the deployment environments the service runs in
// and normalises the short aliases ("prod", "stage", "dev") operators use in
// APP_ENV.
package environment
