/*
Package yin implements a best-effort default reader for the YIN
statement-tree format (RFC 7950 §13): an XML serialization of YANG
where every statement is an element named after its keyword, carrying
its argument either as an attribute or as a child <name> element
depending on the statement's yin-element property.

This is not part of the schema helper core proper; the textual parser
is an external collaborator, and this package exists so callers who
don't want to supply their own YANG/YIN parser have a working
loader.ParseFunc out of the box for the YIN half of the format split.
*/
package yin
