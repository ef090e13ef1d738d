/*
Package cryptotree implements an authenticated, self-balancing binary
search tree and related data structures.
The tree is a dictionary keyed by a unique record id that guarantees
O(log n) search, insertion and deletion via AVL balancing, and produces
a single collision-resistant commitment (the root digest) over its
entire contents. We implemented this data structure separately as a
library to help other developers use it in their implementation easily.

Authenticated AVL Tree

Every node stores one record together with its height and a cached
digest binding the record's content digest, both children's digests and
the height. Mutations are copy-on-write: insertion and deletion clone
the nodes on their path and return a new root, so snapshots taken with
Clone share structure with the live tree and are never invalidated by
later mutations. Records are immutable once inserted; updating a record
requires deleting and re-inserting it.

Inclusion Proofs

For every stored record the tree produces a compact inclusion proof: the
target node's own digests and height plus, for each ancestor, the
direction the lookup took, the ancestor's content digest and height, and
the digest of the sibling subtree. A verifier holding only the root
digest can recompute the commitment from the proof and the record alone,
without access to the tree or to any other record's payload. The hash
and signature operations are provided by our crypto package.

Signed Tree Roots

A RootLog extends the tree with a hash chain of signed tree roots, one
per epoch, and a bounded cache of recent snapshots so that proofs can
still be generated against historical roots.
*/
package cryptotree
