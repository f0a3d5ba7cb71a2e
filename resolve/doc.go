/*
Package resolve implements the prefix resolver, the type resolver, and
the status/revision auditor, the helpers a semantic compiler calls into
directly once it has a compiled or parsed module facet in hand. Package
nodeid builds on ResolvePrefix for its own, more involved, schema-nodeid
walk.
*/
package resolve
