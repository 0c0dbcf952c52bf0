// Package value provides the JSON document model: a tagged union
// node over the seven JSON variants, with numeric cross-type
// coercion, insertion-ordered object members, attached comments and
// source-span tracking.
package value
