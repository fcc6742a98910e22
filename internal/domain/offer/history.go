package offer

import "sort"

// History holds superseded snapshots of one RFQ+supplier pair, oldest first.
type History []Offer

func NewHistory(offers []Offer) History {
	h := make(History, len(offers))
	copy(h, offers)
	sort.SliceStable(h, func(i, j int) bool {
		return h[i].VersionNumber < h[j].VersionNumber
	})
	return h
}

func (h History) Latest() (Offer, bool) {
	if len(h) == 0 {
		return Offer{}, false
	}
	return h[len(h)-1], true
}

func (h History) ByVersion(version int) (Offer, bool) {
	for _, o := range h {
		if o.VersionNumber == version {
			return o, true
		}
	}
	return Offer{}, false
}
