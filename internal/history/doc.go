// Package history archives committed scan sessions in SQLite.
//
// The active session lives in the session package's JSON snapshot; history is
// the durable record written when a session is committed. Each archived
// session keeps its item list in detection order so past scans can be
// reviewed after the live session is gone.
package history
