// Package connectors holds the remote search sources the collector pages
// through. Each connector implements driven.RepoSearcher for one API.
package connectors
