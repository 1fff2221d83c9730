// Package subtext interpolates delimited placeholder variables into text and
// produces replacers that mask the substituted values back out of derived
// output.
//
// Interpolation scans the input once, left to right, replacing each
// [[variable]] (or {{variable}}, depending on [Style]) with its value from a
// string map. Alongside the result it returns a [Replacers] list recording
// which values were substituted. That list can later redact those values from
// any string — a log line, an error message, a rendered config — without
// access to the original variable map, so secrets never need to travel with
// the text they were written into.
//
// A run of three delimiter characters escapes interpolation: "[[[literal]]]"
// renders as "[[literal]]" with no lookup performed.
package subtext
