// Package bank persists the question bank as a JSON file on disk.
//
// The file layout matches the questions.json artifact consumed by the
// bundled application: a UTF-8 array of question objects, indented with two
// spaces.
package bank
