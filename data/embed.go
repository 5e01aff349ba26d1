// Package data embeds all lexicon data files.
package data

import _ "embed"

//go:embed flavors.txt
var Flavors string

//go:embed dishes.txt
var Dishes string

//go:embed lexicon.txt
var SentimentLexicon string
