/*
Package libyang is the schema helper core of a YANG (RFC 7950) schema
processing library: the semantic machinery that binds a parsed YANG
module to its compiled form.

It provides lexical identifier parsing (ident), prefix-to-module and
type resolution plus status and revision auditing (resolve), typedef
name-collision enforcement (typedefcheck), schema-nodeid resolution
(nodeid), and module/submodule loading orchestration (loader), with a
best-effort YIN statement reader (yin) usable as a default parser.

Textual tokenization, the uses/augment/deviation semantic compiler,
data-tree validation, and XPath evaluation are external collaborators;
this module supplies the data model (schema) and the algorithms that
operate on it, not a full YANG toolchain.

See the loader sub-directory for module acquisition and the resolve,
nodeid and typedefcheck sub-directories for the resolvers consumed by a
semantic compiler built on top of this core.
*/
package libyang
