package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/mustafatiftikci/crypto-tree/cryptotree"
)

// loadTree reads a stream of JSON record objects from the file at
// path and inserts them into a fresh tree.
func loadTree(path string) (*cryptotree.Tree, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	tree := cryptotree.New()
	dec := json.NewDecoder(f)
	for {
		var rec cryptotree.Record
		if err := dec.Decode(&rec); err == io.EOF {
			break
		} else if err != nil {
			return nil, fmt.Errorf("%s: %v", path, err)
		}
		if _, err := tree.Insert(rec); err != nil {
			return nil, fmt.Errorf("%s: %v", path, err)
		}
	}
	return tree, nil
}

// loadRecord reads a single JSON record object from the file at path.
func loadRecord(path string) (cryptotree.Record, error) {
	buf, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var rec cryptotree.Record
	if err := json.Unmarshal(buf, &rec); err != nil {
		return nil, fmt.Errorf("%s: %v", path, err)
	}
	return rec, nil
}
