// Package main hosts the gedcard CLI entrypoint and command graph.
//
// The Cobra-based command tree loads page snapshots (scraper JSON or saved
// HTML pages), converts them into GEDCOM documents, prints text summaries and
// tables of the resulting family graph, and manages the export history and
// configuration file. Configuration resolution and logger setup live here so
// subcommands only wire flags to the internal packages.
package main
