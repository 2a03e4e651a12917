package rtz

import (
	"bytes"
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// Known namespace URIs for the route exchange schema, in priority order.
const (
	nsRTZ10 = "http://www.cirm.org/RTZ/1/0"
	nsRTZ11 = "http://www.cirm.org/RTZ/1/1"
	nsRTZ12 = "http://www.cirm.org/RTZ/1/2"
)

// binding is one namespace variant of the schema. An empty ns with anyNS set
// matches tag local names regardless of namespace; it is the last-resort
// fallback for undeclared or unknown namespaces.
type binding struct {
	ns    string
	anyNS bool
}

var bindings = []binding{
	{ns: nsRTZ10},
	{ns: nsRTZ11},
	{ns: nsRTZ12},
	{anyNS: true},
}

func (b binding) matches(name xml.Name, local string) bool {
	if name.Local != local {
		return false
	}
	return b.anyNS || name.Space == b.ns
}

// ErrNoWaypoints reports a well-formed document with zero waypoint elements
// under every known namespace binding.
var ErrNoWaypoints = errors.New("no waypoint elements under any known namespace")

// Parse decodes one route file into a RouteDraft. Each namespace binding is
// tried in priority order; the first binding that yields at least one
// waypoint element wins. Waypoints with unsanitizable coordinates are dropped
// and recorded on the draft, they do not fail the parse.
func Parse(data []byte) (RouteDraft, error) {
	var lastErr error
	for _, b := range bindings {
		draft, elems, err := parseBinding(data, b)
		if err != nil {
			lastErr = err
			continue
		}
		if elems == 0 {
			continue
		}
		return draft, nil
	}
	if lastErr != nil {
		return RouteDraft{}, fmt.Errorf("malformed route file: %w", lastErr)
	}
	return RouteDraft{}, ErrNoWaypoints
}

// pendingWaypoint holds one waypoint element's raw attributes until its end
// tag, when coordinates are sanitized and the waypoint accepted or dropped.
type pendingWaypoint struct {
	id       string
	name     string
	latRaw   string
	lonRaw   string
	radius   *float64
	speedMax *float64
	elemIdx  int
}

func parseBinding(data []byte, b binding) (RouteDraft, int, error) {
	dec := xml.NewDecoder(bytes.NewReader(data))
	var draft RouteDraft
	var cur *pendingWaypoint
	elems := 0

	for {
		tok, err := dec.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return RouteDraft{}, 0, err
		}
		switch t := tok.(type) {
		case xml.StartElement:
			switch {
			case b.matches(t.Name, "routeInfo"):
				if v, ok := attr(t, "routeName"); ok {
					draft.Name = strings.TrimSpace(v)
				}
			case b.matches(t.Name, "waypoint"):
				cur = &pendingWaypoint{elemIdx: elems}
				elems++
				if v, ok := attr(t, "id"); ok {
					cur.id = strings.TrimSpace(v)
				}
				if v, ok := attr(t, "name"); ok {
					cur.name = strings.TrimSpace(v)
				}
				if v, ok := attr(t, "radius"); ok {
					cur.radius = parseOptionalFloat(v)
				} else if v, ok := attr(t, "turnRadius"); ok {
					cur.radius = parseOptionalFloat(v)
				}
			case cur != nil && b.matches(t.Name, "position"):
				if v, ok := attr(t, "lat"); ok {
					cur.latRaw = v
				}
				if v, ok := attr(t, "lon"); ok {
					cur.lonRaw = v
				}
			case cur != nil && b.matches(t.Name, "leg"):
				if v, ok := attr(t, "speedMax"); ok {
					cur.speedMax = parseOptionalFloat(v)
				} else if v, ok := attr(t, "planSpeedMax"); ok {
					cur.speedMax = parseOptionalFloat(v)
				}
			}
		case xml.EndElement:
			if cur != nil && b.matches(t.Name, "waypoint") {
				finalizeWaypoint(&draft, cur)
				cur = nil
			}
		}
	}
	return draft, elems, nil
}

func finalizeWaypoint(draft *RouteDraft, p *pendingWaypoint) {
	lat, latOK := SanitizeLat(p.latRaw)
	lon, lonOK := SanitizeLon(p.lonRaw)
	if !latOK || !lonOK {
		draft.CoordinateDrops = append(draft.CoordinateDrops,
			fmt.Sprintf("waypoint %d (%q): unsanitizable position lat=%q lon=%q", p.elemIdx, p.name, p.latRaw, p.lonRaw))
		return
	}
	draft.Waypoints = append(draft.Waypoints, Waypoint{
		ID:           p.id,
		Name:         p.name,
		Lat:          lat,
		Lon:          lon,
		TurnRadiusNM: p.radius,
		SpeedMaxKn:   p.speedMax,
		Order:        len(draft.Waypoints),
	})
}

func attr(el xml.StartElement, local string) (string, bool) {
	for _, a := range el.Attr {
		if a.Name.Local == local {
			return a.Value, true
		}
	}
	return "", false
}

func parseOptionalFloat(raw string) *float64 {
	v, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil {
		return nil
	}
	return &v
}
