// Package codec bridges per-entity writers and parsers to Redmine's JSON
// envelopes.
//
// Single objects travel as {"<singular>": {...}}, listings as
// {"<plural>": [...], "total_count": N}. Parsers read fields through
// [Object], which reports missing or mistyped required fields as
// format errors; writers emit fields through [FieldWriter] in a stable
// order.
package codec
