/*
Package loader implements module/submodule loading orchestration:
acquiring a module by name and optional revision from a context's
registry, a user-supplied import callback, or the local filesystem,
running the post-parse check, and enforcing implemented-revision
uniqueness and the parsing-cycle guard.
*/
package loader
