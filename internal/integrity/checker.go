// Package integrity walks the cross-entity invariants that no per-document
// validator can see: reference existence, role-detail agreement, hierarchy
// shape, cardinality rules, and version-chain consistency. It operates on a
// snapshot of the record set and reports RelationshipViolations.
package integrity

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/v2/bson"

	"github.com/wellnecity/edm/internal/errs"
	"github.com/wellnecity/edm/internal/schema"
)

// Mode selects how findings are treated. Strict rejects on the first
// violation; Advisory logs every finding and accepts the write.
type Mode int

const (
	Strict Mode = iota
	Advisory
)

// Finding is one invariant failure. Advisory findings never reject, even in
// Strict mode; they exist for rules the data model intentionally leaves soft.
type Finding struct {
	Advisory bool
	Err      *errs.Error
}

type Checker struct {
	reg  *schema.Registry
	src  Source
	mode Mode
	log  zerolog.Logger
}

func NewChecker(reg *schema.Registry, src Source, mode Mode, log zerolog.Logger) *Checker {
	return &Checker{reg: reg, src: src, mode: mode, log: log.With().Str("component", "integrity").Logger()}
}

// snapshot indexes every registered collection by primary key.
type snapshot map[string]map[uuid.UUID]bson.M

func (c *Checker) load(ctx context.Context) (snapshot, error) {
	snap := make(snapshot, len(c.reg.Names()))
	for _, name := range c.reg.Names() {
		docs, err := c.src.All(ctx, name)
		if err != nil {
			return nil, err
		}
		byID := make(map[uuid.UUID]bson.M, len(docs))
		for _, doc := range docs {
			if id, ok := uuidField(doc, "_id"); ok {
				byID[id] = doc
			}
		}
		snap[name] = byID
	}
	return snap, nil
}

// Check sweeps the full record set and returns every finding. The error
// return is reserved for store failures; invariant failures are findings.
func (c *Checker) Check(ctx context.Context) ([]Finding, error) {
	snap, err := c.load(ctx)
	if err != nil {
		return nil, err
	}
	var out []Finding
	out = append(out, c.checkReferences(snap)...)
	out = append(out, c.checkRoleDetails(snap)...)
	out = append(out, c.checkDateActivity(snap)...)
	out = append(out, c.checkStructureNodes(snap)...)
	out = append(out, c.checkPortfolios(snap)...)
	out = append(out, c.checkSubscribers(snap)...)
	out = append(out, c.checkCompositionChains(snap)...)
	out = append(out, c.checkEligibilityEnrollment(snap)...)
	return out, nil
}

// Enforce runs Check and applies the mode: Strict surfaces the first
// non-advisory finding as an error, Advisory logs everything and accepts.
func (c *Checker) Enforce(ctx context.Context) error {
	findings, err := c.Check(ctx)
	if err != nil {
		return err
	}
	for _, f := range findings {
		if f.Advisory || c.mode == Advisory {
			c.log.Warn().
				Str("collection", f.Err.Collection).
				Str("rule", f.Err.Rule).
				Msg(f.Err.Message)
			continue
		}
		return f.Err
	}
	return nil
}

// checkReferences verifies every declared foreign key resolves.
func (c *Checker) checkReferences(snap snapshot) []Finding {
	var out []Finding
	for _, name := range c.reg.Names() {
		coll, _ := c.reg.Collection(name)
		refs := coll.References()
		if len(refs) == 0 {
			continue
		}
		for _, doc := range snap[name] {
			for _, ref := range refs {
				id, ok := uuidField(doc, ref.Name)
				if !ok {
					continue
				}
				if _, found := snap[ref.Ref][id]; !found {
					out = append(out, violation(errs.Relationship(name, "fk-existence",
						"%s %s references missing %s %s", name, docID(doc), ref.Ref, id)))
				}
			}
		}
	}
	return out
}

// roleDetailTypes binds each role-detail collection to the org_role type it
// extends. A detail row attached to a role of any other type is malformed.
var roleDetailTypes = map[string]string{
	"employer_details":            "EMPLOYER",
	"client_details":              "CLIENT",
	"vendor_details":              "VENDOR",
	"broker_details":              "BROKER",
	"carrier_details":             "CARRIER",
	"health_plan_sponsor_details": "HEALTH_PLAN_SPONSOR",
	"provider_org_details":        "PROVIDER_ORG",
}

func (c *Checker) checkRoleDetails(snap snapshot) []Finding {
	var out []Finding
	for detailColl, wantType := range roleDetailTypes {
		for _, doc := range snap[detailColl] {
			roleID, ok := uuidField(doc, "org_role_id")
			if !ok {
				continue
			}
			role, found := snap["org_role"][roleID]
			if !found {
				continue // fk-existence already reported
			}
			if got, _ := strField(role, "role_type"); got != wantType {
				out = append(out, violation(errs.Relationship(detailColl, "role-detail-match",
					"%s %s attached to org_role %s of type %s, want %s",
					detailColl, docID(doc), roleID, got, wantType)))
			}
		}
	}
	return out
}

// checkDateActivity flags rows still marked active after their termination
// date has passed. Applies to every collection declaring both fields.
func (c *Checker) checkDateActivity(snap snapshot) []Finding {
	now := time.Now()
	var out []Finding
	for _, name := range c.reg.Names() {
		coll, _ := c.reg.Collection(name)
		if coll.Field("is_active") == nil || coll.Field("termination_date") == nil {
			continue
		}
		for _, doc := range snap[name] {
			active, _ := boolField(doc, "is_active")
			term, hasTerm := timeField(doc, "termination_date")
			if active && hasTerm && term.Before(now) {
				out = append(out, violation(errs.Relationship(name, "date-activity",
					"%s %s is active but terminated on %s", name, docID(doc), term.Format("2006-01-02"))))
			}
		}
	}
	return out
}

// checkStructureNodes verifies hierarchy shape: roots at level 0, children
// one level below their parent, one structure per tree, no cycles.
func (c *Checker) checkStructureNodes(snap snapshot) []Finding {
	nodes := snap["org_structure_node"]
	var out []Finding
	for id, doc := range nodes {
		level, _ := intField(doc, "level")
		parentID, hasParent := uuidField(doc, "parent_node_id")
		if !hasParent {
			if level != 0 {
				out = append(out, violation(errs.Relationship("org_structure_node", "node-level",
					"root node %s declares level %d, want 0", id, level)))
			}
			continue
		}
		parent, found := nodes[parentID]
		if !found {
			continue // fk-existence already reported
		}
		parentLevel, _ := intField(parent, "level")
		if level != parentLevel+1 {
			out = append(out, violation(errs.Relationship("org_structure_node", "node-level",
				"node %s declares level %d under parent at level %d", id, level, parentLevel)))
		}
		structID, _ := uuidField(doc, "org_structure_id")
		parentStructID, _ := uuidField(parent, "org_structure_id")
		if structID != parentStructID {
			out = append(out, violation(errs.Relationship("org_structure_node", "structure-uniform",
				"node %s belongs to structure %s but its parent belongs to %s", id, structID, parentStructID)))
		}
	}
	out = append(out, c.checkAcyclic(nodes, "org_structure_node", "parent_node_id")...)
	return out
}

func (c *Checker) checkPortfolios(snap snapshot) []Finding {
	portfolios := snap["portfolio"]
	var out []Finding
	for id, doc := range portfolios {
		_, hasOrg := uuidField(doc, "owner_org_id")
		_, hasPerson := uuidField(doc, "owner_person_id")
		if hasOrg && hasPerson {
			out = append(out, violation(errs.Relationship("portfolio", "owner-exclusive",
				"portfolio %s declares both an org owner and a person owner", id)))
		}
	}
	out = append(out, c.checkAcyclic(portfolios, "portfolio", "parent_portfolio_id")...)
	return out
}

// checkAcyclic walks each row's parent chain with a visited set. Each cycle
// is reported once, keyed by its smallest member.
func (c *Checker) checkAcyclic(docs map[uuid.UUID]bson.M, collection, parentField string) []Finding {
	var out []Finding
	reported := make(map[uuid.UUID]bool)
	for start := range docs {
		visited := map[uuid.UUID]bool{start: true}
		cur := start
		for {
			next, ok := uuidField(docs[cur], parentField)
			if !ok {
				break
			}
			if _, exists := docs[next]; !exists {
				break
			}
			if visited[next] {
				low := next
				for n := range visited {
					if n.String() < low.String() {
						low = n
					}
				}
				if !reported[low] {
					reported[low] = true
					out = append(out, violation(errs.Relationship(collection, "acyclic",
						"%s %s is part of a parent cycle", collection, next)))
				}
				break
			}
			visited[next] = true
			cur = next
		}
	}
	return out
}

// checkSubscribers verifies each coverage's membership: exactly one
// SUBSCRIBER, and every DEPENDENT linked to that subscriber.
func (c *Checker) checkSubscribers(snap snapshot) []Finding {
	byCoverage := make(map[uuid.UUID][]bson.M)
	for _, doc := range snap["plan_member"] {
		if covID, ok := uuidField(doc, "coverage_id"); ok {
			byCoverage[covID] = append(byCoverage[covID], doc)
		}
	}
	var out []Finding
	for covID, members := range byCoverage {
		var subscriberID uuid.UUID
		subscribers := 0
		for _, m := range members {
			if t, _ := strField(m, "member_type"); t == "SUBSCRIBER" {
				subscribers++
				subscriberID = docID(m)
			}
		}
		if subscribers != 1 {
			out = append(out, violation(errs.Relationship("plan_member", "single-subscriber",
				"coverage %s has %d subscribers, want exactly 1", covID, subscribers)))
			continue
		}
		for _, m := range members {
			if t, _ := strField(m, "member_type"); t != "DEPENDENT" {
				continue
			}
			link, ok := uuidField(m, "subscriber_plan_member_id")
			if !ok || link != subscriberID {
				out = append(out, violation(errs.Relationship("plan_member", "subscriber-link",
					"dependent %s does not reference subscriber %s of coverage %s",
					docID(m), subscriberID, covID)))
			}
		}
	}
	return out
}

// checkCompositionChains groups composition versions by chain root and
// verifies exactly one current version holding the highest version number.
func (c *Checker) checkCompositionChains(snap snapshot) []Finding {
	comps := snap["health_record_composition"]
	chains := make(map[uuid.UUID][]bson.M)
	for id, doc := range comps {
		root := id
		visited := map[uuid.UUID]bool{id: true}
		for {
			prev, ok := uuidField(comps[root], "preceding_version_id")
			if !ok {
				break
			}
			if _, exists := comps[prev]; !exists || visited[prev] {
				break
			}
			visited[prev] = true
			root = prev
		}
		chains[root] = append(chains[root], doc)
	}
	var out []Finding
	for root, versions := range chains {
		current := 0
		var currentVersion, maxVersion int
		for _, v := range versions {
			n, _ := intField(v, "version_number")
			if n > maxVersion {
				maxVersion = n
			}
			if cur, _ := boolField(v, "is_current"); cur {
				current++
				currentVersion = n
			}
		}
		if current != 1 {
			out = append(out, violation(errs.Relationship("health_record_composition", "version-chain",
				"chain rooted at %s has %d current versions, want exactly 1", root, current)))
			continue
		}
		if currentVersion != maxVersion {
			out = append(out, violation(errs.Relationship("health_record_composition", "version-chain",
				"chain rooted at %s marks version %d current but version %d exists", root, currentVersion, maxVersion)))
		}
	}
	return out
}

// checkEligibilityEnrollment reports ELIGIBLE_ENROLLED rows with no matching
// plan membership. Always advisory: the data model leaves this soft.
func (c *Checker) checkEligibilityEnrollment(snap snapshot) []Finding {
	var out []Finding
	for _, elig := range snap["eligibility"] {
		if status, _ := strField(elig, "status"); status != "ELIGIBLE_ENROLLED" {
			continue
		}
		employeeID, ok := uuidField(elig, "employee_id")
		if !ok {
			continue
		}
		employee, found := snap["employee"][employeeID]
		if !found {
			continue
		}
		personID, _ := uuidField(employee, "person_id")
		planID, _ := uuidField(elig, "benefit_plan_id")
		enrolled := false
		for _, m := range snap["plan_member"] {
			mPersonID, _ := uuidField(m, "person_id")
			if mPersonID != personID {
				continue
			}
			covID, _ := uuidField(m, "coverage_id")
			if cov, found := snap["coverage"][covID]; found {
				if covPlanID, _ := uuidField(cov, "benefit_plan_id"); covPlanID == planID {
					enrolled = true
					break
				}
			}
		}
		if !enrolled {
			out = append(out, Finding{Advisory: true, Err: errs.Relationship("eligibility", "eligibility-enrollment",
				"eligibility %s is ELIGIBLE_ENROLLED but employee %s holds no membership in plan %s",
				docID(elig), employeeID, planID)})
		}
	}
	return out
}

func violation(err *errs.Error) Finding { return Finding{Err: err} }

func docID(doc bson.M) uuid.UUID {
	id, _ := uuidField(doc, "_id")
	return id
}

func uuidField(doc bson.M, name string) (uuid.UUID, bool) {
	switch v := doc[name].(type) {
	case uuid.UUID:
		return v, true
	case bson.Binary:
		if v.Subtype == bson.TypeBinaryUUID && len(v.Data) == 16 {
			id, err := uuid.FromBytes(v.Data)
			return id, err == nil
		}
	}
	return uuid.Nil, false
}

func strField(doc bson.M, name string) (string, bool) {
	s, ok := doc[name].(string)
	return s, ok
}

func boolField(doc bson.M, name string) (bool, bool) {
	b, ok := doc[name].(bool)
	return b, ok
}

func intField(doc bson.M, name string) (int, bool) {
	switch v := doc[name].(type) {
	case int:
		return v, true
	case int32:
		return int(v), true
	case int64:
		return int(v), true
	}
	return 0, false
}

func timeField(doc bson.M, name string) (time.Time, bool) {
	switch v := doc[name].(type) {
	case time.Time:
		return v, true
	case bson.DateTime:
		return v.Time(), true
	}
	return time.Time{}, false
}
