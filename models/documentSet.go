package models

// DocumentSet is the live store view of charge documents: the pending and
// settled collections per document type. Documents move between collections
// on settlement and on rollback; they are never deleted.
type DocumentSet struct {
	PendingBills []*Bill `json:"pending_bills"`
	SettledBills []*Bill `json:"settled_bills"`
	PendingMemos []*Memo `json:"pending_memos"`
	SettledMemos []*Memo `json:"settled_memos"`
}

func (s *DocumentSet) Documents() []ChargeDocument {
	out := make([]ChargeDocument, 0,
		len(s.PendingBills)+len(s.SettledBills)+len(s.PendingMemos)+len(s.SettledMemos))
	for _, b := range s.PendingBills {
		out = append(out, b)
	}
	for _, b := range s.SettledBills {
		out = append(out, b)
	}
	for _, m := range s.PendingMemos {
		out = append(out, m)
	}
	for _, m := range s.SettledMemos {
		out = append(out, m)
	}
	return out
}

func (s *DocumentSet) Pending() []ChargeDocument {
	out := make([]ChargeDocument, 0, len(s.PendingBills)+len(s.PendingMemos))
	for _, b := range s.PendingBills {
		out = append(out, b)
	}
	for _, m := range s.PendingMemos {
		out = append(out, m)
	}
	return out
}

func findDoc[T ChargeDocument](docs []T, match func(T) bool) (T, bool) {
	var zero T
	for _, d := range docs {
		if match(d) {
			return d, true
		}
	}
	return zero, false
}

func removeDoc[T ChargeDocument](docs []T, id string) ([]T, bool) {
	for i, d := range docs {
		if d.Core().ID == id {
			return append(docs[:i:i], docs[i+1:]...), true
		}
	}
	return docs, false
}

// Resolve locates a document of the given kind by id, searching pending then
// settled, and falls back to matching by document number. Reports false when
// both passes miss in both collections.
func (s *DocumentSet) Resolve(kind DocumentKind, relatedId string, relatedName string) (ChargeDocument, bool) {
	byId := func(doc ChargeDocument) bool {
		return relatedId != "" && doc.Core().ID == relatedId
	}
	byNumber := func(doc ChargeDocument) bool {
		return relatedName != "" && doc.Core().Number == relatedName
	}
	for _, match := range []func(ChargeDocument) bool{byId, byNumber} {
		switch kind {
		case DocumentKindBill:
			if b, ok := findDoc(s.PendingBills, func(b *Bill) bool { return match(b) }); ok {
				return b, true
			}
			if b, ok := findDoc(s.SettledBills, func(b *Bill) bool { return match(b) }); ok {
				return b, true
			}
		case DocumentKindMemo:
			if m, ok := findDoc(s.PendingMemos, func(m *Memo) bool { return match(m) }); ok {
				return m, true
			}
			if m, ok := findDoc(s.SettledMemos, func(m *Memo) bool { return match(m) }); ok {
				return m, true
			}
		}
	}
	return nil, false
}

// ResolveAny searches bills then memos; used for advance entries, whose
// category does not identify the document type.
func (s *DocumentSet) ResolveAny(relatedId string, relatedName string) (ChargeDocument, bool) {
	if doc, ok := s.Resolve(DocumentKindBill, relatedId, relatedName); ok {
		return doc, true
	}
	return s.Resolve(DocumentKindMemo, relatedId, relatedName)
}

// IsSettled reports which collection currently holds the document.
func (s *DocumentSet) IsSettled(doc ChargeDocument) bool {
	id := doc.Core().ID
	switch doc.Kind() {
	case DocumentKindBill:
		_, ok := findDoc(s.SettledBills, func(b *Bill) bool { return b.Core().ID == id })
		return ok
	case DocumentKindMemo:
		_, ok := findDoc(s.SettledMemos, func(m *Memo) bool { return m.Core().ID == id })
		return ok
	}
	return false
}

// Refile moves the document into the collection its Status demands. A no-op
// when it is already filed correctly.
func (s *DocumentSet) Refile(doc ChargeDocument) {
	id := doc.Core().ID
	settled := doc.Core().Status == DocumentStatusSettled
	switch d := doc.(type) {
	case *Bill:
		s.PendingBills, _ = removeDoc(s.PendingBills, id)
		s.SettledBills, _ = removeDoc(s.SettledBills, id)
		if settled {
			s.SettledBills = append(s.SettledBills, d)
		} else {
			s.PendingBills = append(s.PendingBills, d)
		}
	case *Memo:
		s.PendingMemos, _ = removeDoc(s.PendingMemos, id)
		s.SettledMemos, _ = removeDoc(s.SettledMemos, id)
		if settled {
			s.SettledMemos = append(s.SettledMemos, d)
		} else {
			s.PendingMemos = append(s.PendingMemos, d)
		}
	}
}

// Replace swaps the stored document carrying the same id for the given one,
// keeping it in whichever collection currently holds it.
func (s *DocumentSet) Replace(doc ChargeDocument) bool {
	id := doc.Core().ID
	switch d := doc.(type) {
	case *Bill:
		for _, list := range []*[]*Bill{&s.PendingBills, &s.SettledBills} {
			for i, existing := range *list {
				if existing.Core().ID == id {
					(*list)[i] = d
					return true
				}
			}
		}
	case *Memo:
		for _, list := range []*[]*Memo{&s.PendingMemos, &s.SettledMemos} {
			for i, existing := range *list {
				if existing.Core().ID == id {
					(*list)[i] = d
					return true
				}
			}
		}
	}
	return false
}
