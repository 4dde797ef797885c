// Package cluster groups records that share at least one minimizer.
//
// Every added record becomes an element of a dsv.Vector; the first record
// to contribute a key owns it, and any later record carrying the same key
// is united with the owner. Connectivity is transitive, so records end up
// together whenever a chain of shared keys links them.
package cluster

import (
	"errors"
	"fmt"
	"sort"

	"github.com/katalvlaran/kmerlath/dsv"
	"github.com/katalvlaran/kmerlath/kmer"
)

// ErrDuplicateID is returned by Add for an ID seen before.
var ErrDuplicateID = errors.New("cluster: duplicate record id")

// Cluster is one connected group of records.
type Cluster struct {
	// IDs of the member records, in insertion order.
	IDs []string
	// Keys is the number of distinct keys first contributed by members.
	Keys int
}

// Clusterer accumulates records. It is not safe for concurrent use.
type Clusterer struct {
	sets  *dsv.Vector[string]
	owner map[kmer.Key]int
	ids   map[string]int
	keys  []int // keys first contributed, per element
}

// New returns an empty Clusterer.
func New() *Clusterer {
	return &Clusterer{
		sets:  dsv.New[string](0),
		owner: make(map[kmer.Key]int),
		ids:   make(map[string]int),
	}
}

// Add registers a record and its keys and returns its element index.
func (c *Clusterer) Add(id string, keys []kmer.Key) (int, error) {
	if _, dup := c.ids[id]; dup {
		return -1, fmt.Errorf("%w: %q", ErrDuplicateID, id)
	}
	i := c.sets.Emplace(id)
	c.ids[id] = i
	c.keys = append(c.keys, 0)

	for _, k := range keys {
		if j, ok := c.owner[k]; ok {
			c.sets.Union(j, i)
			continue
		}
		c.owner[k] = i
		c.keys[i]++
	}
	return i, nil
}

// Len returns the number of records.
func (c *Clusterer) Len() int { return c.sets.Len() }

// NumClusters returns the number of clusters.
func (c *Clusterer) NumClusters() int { return c.sets.Sets() }

// Same reports whether two records are in one cluster. Unknown IDs are
// never in any cluster.
func (c *Clusterer) Same(a, b string) bool {
	i, ok := c.ids[a]
	j, ok2 := c.ids[b]
	return ok && ok2 && c.sets.SameSet(i, j)
}

// Clusters returns every cluster, largest first; ties keep the order of
// the first member.
func (c *Clusterer) Clusters() []Cluster {
	groups := c.sets.Groups()
	out := make([]Cluster, len(groups))
	for g, members := range groups {
		cl := Cluster{IDs: make([]string, len(members))}
		for m, i := range members {
			cl.IDs[m] = c.sets.Value(i)
			cl.Keys += c.keys[i]
		}
		out[g] = cl
	}
	sort.SliceStable(out, func(a, b int) bool { return len(out[a].IDs) > len(out[b].IDs) })
	return out
}
