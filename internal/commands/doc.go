// Package commands wires the command-line interface: the default command
// opens the desktop window, the subcommands run one acquisition step in the
// terminal.
package commands
