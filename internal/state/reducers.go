package state

import (
	"strings"

	"golang.org/x/text/unicode/norm"

	"github.com/ahouk/winnow/internal/quarry"
)

// reduce applies one action to the state and returns the next state. It
// never mutates shared structures in place: any map or slice it changes is
// rebuilt, so previously observed states stay stable.
func reduce(s State, a Action) State {
	switch a := a.(type) {
	case SetQuery:
		// Queries cross a serialization boundary (wire, history db), so
		// normalize to NFC once here instead of at every consumer.
		s.Query.Text = norm.NFC.String(a.Text)
		return s

	case SubmitSearch:
		return commitIntent(s, a.RequestID, true)

	case RegisterFacet:
		field := strings.TrimSpace(a.Field)
		if field == "" {
			return s
		}
		if _, ok := s.Facets.Fields[field]; ok {
			return s
		}
		fields := cloneFacetFields(s.Facets.Fields)
		fields[field] = FacetState{Field: field}
		s.Facets = FacetsState{
			Order:  append(append([]string(nil), s.Facets.Order...), field),
			Fields: fields,
		}
		return s

	case ToggleFacetValue:
		facet, ok := s.Facets.Fields[a.Field]
		if !ok || a.Value == "" {
			return s
		}
		if facet.IsSelected(a.Value) {
			selected := make([]string, 0, len(facet.Selected)-1)
			for _, v := range facet.Selected {
				if v != a.Value {
					selected = append(selected, v)
				}
			}
			facet.Selected = selected
		} else {
			facet.Selected = append(append([]string(nil), facet.Selected...), a.Value)
		}
		fields := cloneFacetFields(s.Facets.Fields)
		fields[a.Field] = facet
		s.Facets.Fields = fields
		return commitIntent(s, a.RequestID, true)

	case ClearFacet:
		fields := cloneFacetFields(s.Facets.Fields)
		cleared := false
		for field, facet := range fields {
			if a.Field != "" && field != a.Field {
				continue
			}
			if len(facet.Selected) > 0 {
				facet.Selected = nil
				fields[field] = facet
				cleared = true
			}
		}
		if !cleared {
			return s
		}
		s.Facets.Fields = fields
		return commitIntent(s, a.RequestID, true)

	case NextPage:
		next := s.Page.Offset + s.Page.Size
		return moveOffset(s, next, a.RequestID)

	case PrevPage:
		return moveOffset(s, s.Page.Offset-s.Page.Size, a.RequestID)

	case SelectPage:
		if a.Page < 1 || s.Page.Size <= 0 {
			return s
		}
		return moveOffset(s, (a.Page-1)*s.Page.Size, a.RequestID)

	case SetPageSize:
		if a.Size <= 0 || a.Size == s.Page.Size {
			return s
		}
		s.Page.Size = a.Size
		return commitIntent(s, a.RequestID, true)

	case SearchFulfilled:
		if a.RequestID != s.Query.RequestID {
			return s
		}
		resp := a.Response
		s.Results = ResultsState{
			Hits:      append([]quarry.Hit(nil), resp.Hits...),
			Loading:   false,
			Duration:  resp.Duration(),
			RequestID: a.RequestID,
			Searched:  true,
		}
		s.Page.Total = resp.Total
		if max := lastPageOffset(resp.Total, s.Page.Size); s.Page.Offset > max {
			s.Page.Offset = max
		}
		fields := cloneFacetFields(s.Facets.Fields)
		for _, field := range s.Facets.Order {
			facet := fields[field]
			facet.Values = append([]quarry.FacetCount(nil), resp.Facets[field]...)
			fields[field] = facet
		}
		s.Facets.Fields = fields
		return s

	case SearchRejected:
		if a.RequestID != s.Query.RequestID {
			return s
		}
		// Keep the previous hits visible; only surface the failure.
		s.Results.Loading = false
		s.Results.LastError = a.Err
		s.Results.Searched = true
		return s

	case StatsUpdated:
		s.Stats = StatsState{
			IndexName: a.Stats.Name,
			Documents: a.Stats.Documents,
			Healthy:   a.Healthy,
			Version:   a.Version,
			HasStats:  true,
		}
		return s
	}

	return s
}

// commitIntent stamps a new request id and marks a search as in flight.
// Intent-changing actions invalidate the current page window.
func commitIntent(s State, requestID string, resetOffset bool) State {
	if resetOffset {
		s.Page.Offset = 0
	}
	s.Query.RequestID = requestID
	s.Results.Loading = true
	s.Results.LastError = ""
	return s
}

// moveOffset clamps the target offset into the valid window and commits a
// new intent only when the offset actually moves.
func moveOffset(s State, target int, requestID string) State {
	if target < 0 {
		target = 0
	}
	if max := lastPageOffset(s.Page.Total, s.Page.Size); target > max {
		target = max
	}
	if target == s.Page.Offset {
		return s
	}
	s.Page.Offset = target
	return commitIntent(s, requestID, false)
}

// cloneFacetFields copies the facet map so reducers can write without
// touching states already handed out.
func cloneFacetFields(fields map[string]FacetState) map[string]FacetState {
	dup := make(map[string]FacetState, len(fields))
	for k, v := range fields {
		dup[k] = v
	}
	return dup
}
