// Package session drives one editing engine from the outside world.
//
// A Session owns an engine.Engine together with the collaborators an
// editing surface needs but the engine does not know about: a clipboard,
// a file system for loading and saving the document, and a logger. Every
// session carries a random ID that appears in its log lines.
//
// Files are read and written whole. Opening a file replaces the document
// and forgets the undo history. Files larger than the configured limit,
// directories, and binary content are rejected before they reach the
// engine.
//
// Watcher reports changes to a file on disk so a caller can reload it.
package session
