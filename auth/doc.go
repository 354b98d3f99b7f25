// Package auth implements signature authorization for workflows: the
// payload digest and message-prefixing convention, the alg-tagged
// signature envelope, and identity recovery.
//
// The signature deliberately covers only the payload bytes, never the
// header and never the cursor. It authorizes the content of a workflow,
// not its progress pointer; anyone holding a validly-signed instruction
// may replay it with a caller-chosen cursor.
package auth
