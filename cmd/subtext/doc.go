// Subtext is a CLI for rendering templates with variable interpolation and
// redacting the substituted values from derived text.
//
// It replaces [[variable]] (or {{variable}}) placeholders with values drawn
// from the environment, dotenv files, JSON/TOML files, or --set flags, and
// records a replacer list so the substituted values can later be masked out
// of logs or any other text derived from the output.
//
// Usage:
//
//	subtext render template.txt --env                  # render with environment variables
//	subtext render --set user=root < template.txt      # render stdin with explicit values
//	subtext render t.txt --replacers-out r.json        # keep replacers for later redaction
//	subtext redact --replacers r.json < app.log        # mask substituted values in a log
//
// See https://github.com/dshills/subtext for full documentation.
package main
