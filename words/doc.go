// Package words provides the vocabulary used to name and fill generated files.
//
// A dictionary file (one word per line, such as /usr/share/dict/words) is
// filtered down to plain lowercase alphabetic words between 3 and 12
// characters. When the dictionary is missing or too small to be useful, a
// built-in list of 105 words is used instead, so loading never fails.
package words
