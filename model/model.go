package model

import (
	"github.com/knakk/rdf"
	"strconv"
)

const (
	SubjectUriPrefix   = "http://localhost:3000/test/long#"
	PredicateUriPrefix = "http://example.org/predicate"
	ObjectUriPrefix    = "http://example.org/object"
)

// Triple is a synthetic statement identified only by its id.  Every term of the statement is derived from the id, so
// two Triples with the same id always render identically.
type Triple struct {
	Id uint64
}

func (t Triple) Subject() string {
	return SubjectUriPrefix + strconv.FormatUint(t.Id, 10)
}

func (t Triple) Predicate() string {
	return PredicateUriPrefix + strconv.FormatUint(t.Id, 10)
}

func (t Triple) Object() string {
	return ObjectUriPrefix + strconv.FormatUint(t.Id, 10)
}

// Answers the triple as RDF terms.  The IRIs are built from constant prefixes and a decimal id, which never contain
// characters rejected by rdf.NewIRI.
func (t Triple) RdfTriple() rdf.Triple {
	subj, _ := rdf.NewIRI(t.Subject())
	pred, _ := rdf.NewIRI(t.Predicate())
	obj, _ := rdf.NewIRI(t.Object())
	return rdf.Triple{Subj: subj, Pred: pred, Obj: obj}
}

// Answers the triple as a single line terminated by " .\n".  A statement made only of IRIs has the same shape in
// Turtle and N-Triples, so the N-Triples serialization is used.
func (t Triple) Render() string {
	return t.RdfTriple().Serialize(rdf.NTriples)
}

// Answers true if the supplied triple is the statement this Triple renders.
func (t Triple) Matches(other rdf.Triple) bool {
	if other.Subj == nil || other.Pred == nil || other.Obj == nil {
		return false
	}

	return other.Subj.Type() == rdf.TermIRI && other.Subj.String() == t.Subject() &&
		other.Pred.Type() == rdf.TermIRI && other.Pred.String() == t.Predicate() &&
		other.Obj.Type() == rdf.TermIRI && other.Obj.String() == t.Object()
}
