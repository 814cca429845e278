// Package report renders catalog results as fixed-width Portuguese text.
//
// The same blocks are returned by the tool server and printed by the
// command-line tool, so their wording is kept stable.
package report
