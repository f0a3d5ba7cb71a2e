/*
Package nodeid implements the schema-nodeid resolver: it walks an
absolute or descendant node-path through the compiled schema tree,
resolving prefixed segments via package resolve and applying the
action/rpc input-output and notification special cases.
*/
package nodeid
