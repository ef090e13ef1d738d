package cryptotree

import (
	"errors"

	"github.com/mustafatiftikci/crypto-tree/crypto"
)

var (
	// ErrSTRNotFound indicates that the STR has been evicted from
	// memory, because the maximum number of cached snapshots has
	// been exceeded.
	ErrSTRNotFound = errors.New("[cryptotree] STR not found")
)

// A RootLog owns an authenticated tree and issues a hash chain of
// signed tree roots over it, one per epoch. It keeps a bounded
// in-memory cache of recent snapshots (structurally shared tree
// clones) so that inclusion proofs can still be generated against
// recent historical roots. A RootLog expects a single writer; the
// snapshots it hands out are safe to read concurrently.
type RootLog struct {
	signKey      crypto.SigningKey
	tree         *Tree
	snapshots    map[uint64]*SignedTreeRoot
	loadedEpochs []uint64 // slice of epochs in snapshots
	latestSTR    *SignedTreeRoot
}

// NewRootLog creates a new RootLog with the given signing key and the
// maximum capacity for the snapshot cache length. It issues the STR
// for epoch 0 over the empty tree.
func NewRootLog(signKey crypto.SigningKey, length uint64) (*RootLog, error) {
	log := &RootLog{
		signKey:      signKey,
		tree:         New(),
		snapshots:    make(map[uint64]*SignedTreeRoot, length),
		loadedEpochs: make([]uint64, 0, length),
	}
	if err := log.updateInternal(0); err != nil {
		return nil, err
	}
	return log, nil
}

func (log *RootLog) signTreeRoot(epoch uint64) error {
	var prevHash []byte
	if log.latestSTR == nil {
		var err error
		prevHash, err = crypto.MakeRand()
		if err != nil {
			return err
		}
	} else {
		prevHash = crypto.Digest(log.latestSTR.Signature)
	}
	log.latestSTR = NewSTR(log.signKey, log.tree.Clone(), epoch, prevHash)
	return nil
}

func (log *RootLog) updateInternal(epoch uint64) error {
	if err := log.signTreeRoot(epoch); err != nil {
		return err
	}
	log.snapshots[epoch] = log.latestSTR
	log.loadedEpochs = append(log.loadedEpochs, epoch)
	return nil
}

// Update issues a new signed tree root over the current contents of
// the tree, extending the hash chain by one epoch. It may remove some
// older signed tree roots from memory if the cached snapshots exceeded
// the maximum capacity.
func (log *RootLog) Update() *SignedTreeRoot {
	// delete older str(s) as needed
	if len(log.loadedEpochs) == cap(log.loadedEpochs) {
		n := cap(log.loadedEpochs) / 2
		for i := 0; i < n; i++ {
			delete(log.snapshots, log.loadedEpochs[i])
		}
		log.loadedEpochs = append(log.loadedEpochs[:0], log.loadedEpochs[n:]...)
	}
	// MakeRand is only consulted for the genesis STR, so this
	// cannot fail once epoch 0 exists.
	if err := log.updateInternal(log.latestSTR.Epoch + 1); err != nil {
		panic(err)
	}
	return log.latestSTR
}

// Insert adds a record to the underlying tree. The binding is included
// in the next signed tree root.
func (log *RootLog) Insert(record Record) (bool, error) {
	return log.tree.Insert(record)
}

// Delete removes the record stored under id from the underlying tree.
// The removal takes effect in the next signed tree root.
func (log *RootLog) Delete(id string) bool {
	return log.tree.Delete(id)
}

// Lookup proves inclusion of the requested id against the latest
// snapshot. It returns a nil proof if the id was absent when the
// latest STR was issued.
func (log *RootLog) Lookup(id string) (*Proof, error) {
	return log.LookupInEpoch(id, log.latestSTR.Epoch)
}

// LookupInEpoch proves inclusion of the requested id against the
// snapshot at the requested epoch. It returns ErrSTRNotFound if the
// signed tree root of the requested epoch has been removed from
// memory.
func (log *RootLog) LookupInEpoch(id string, epoch uint64) (*Proof, error) {
	str := log.GetSTR(epoch)
	if str == nil {
		return nil, ErrSTRNotFound
	}
	return str.tree.ProveInclusion(id), nil
}

// GetSTR returns the signed tree root of the requested epoch, read
// from the cached snapshots. It returns the latest STR for any epoch
// at or beyond it, and nil if the requested epoch has been evicted.
func (log *RootLog) GetSTR(epoch uint64) *SignedTreeRoot {
	if epoch >= log.latestSTR.Epoch {
		return log.latestSTR
	}
	return log.snapshots[epoch]
}

// LatestSTR returns the latest signed tree root.
func (log *RootLog) LatestSTR() *SignedTreeRoot {
	return log.latestSTR
}
