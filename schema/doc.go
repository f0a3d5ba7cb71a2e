/*
Package schema is the data model shared by every other component of this
module: parsed and compiled YANG modules and submodules, imports,
includes, revisions, typedefs, and the compiled schema-node tree.

It defines shape only. Population comes from an external textual parser
and from package loader, which orchestrates acquisition, linking, and
the collision/cycle/status invariants enforced by packages typedefcheck,
resolve, and nodeid.
*/
package schema
