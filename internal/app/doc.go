// Package app wires configuration, services and standard streams together
// for each CLI command: it builds the services a command needs, runs them
// under a per-run logger and reports the outcome to the user.
package app
