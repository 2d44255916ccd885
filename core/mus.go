package core

import (
	"github.com/mus-format/mus-go/ord"
	"github.com/mus-format/mus-go/raw"
	"github.com/mus-format/mus-go/varint"
)

// Hand-written MUS serializers for the persisted types. The schema is two
// small fixed structs, so the serializers are maintained by hand instead of
// generated.

var (
	// VectorMUS serializes one embedding vector.
	VectorMUS = ord.NewSliceSer[float32](raw.Float32)
	// matrixMUS serializes the full vector matrix of an index snapshot.
	matrixMUS = ord.NewSliceSer[[]float32](VectorMUS)
	// stringSliceMUS serializes the record id list of an index snapshot.
	stringSliceMUS = ord.NewSliceSer[string](ord.String)
)

// RecordMUS serializes Record values for storage.
var RecordMUS = recordMUS{}

type recordMUS struct{}

func (recordMUS) Marshal(r Record, bs []byte) (n int) {
	n = ord.String.Marshal(r.ID, bs)
	n += ord.String.Marshal(r.Name, bs[n:])
	n += ord.String.Marshal(r.Description, bs[n:])
	n += varint.Int.Marshal(int(r.Type), bs[n:])
	n += ord.String.Marshal(r.TacticID, bs[n:])
	n += ord.String.Marshal(r.TacticName, bs[n:])
	n += ord.String.Marshal(r.TacticDescription, bs[n:])
	n += ord.String.Marshal(r.ParentID, bs[n:])
	n += ord.String.Marshal(r.ParentName, bs[n:])
	n += ord.String.Marshal(r.CompositeText, bs[n:])
	return n
}

func (recordMUS) Unmarshal(bs []byte) (r Record, n int, err error) {
	var n1 int
	if r.ID, n, err = ord.String.Unmarshal(bs); err != nil {
		return
	}
	if r.Name, n1, err = ord.String.Unmarshal(bs[n:]); err != nil {
		return r, n + n1, err
	}
	n += n1
	if r.Description, n1, err = ord.String.Unmarshal(bs[n:]); err != nil {
		return r, n + n1, err
	}
	n += n1
	var typ int
	if typ, n1, err = varint.Int.Unmarshal(bs[n:]); err != nil {
		return r, n + n1, err
	}
	n += n1
	r.Type = RecordType(typ)
	if r.TacticID, n1, err = ord.String.Unmarshal(bs[n:]); err != nil {
		return r, n + n1, err
	}
	n += n1
	if r.TacticName, n1, err = ord.String.Unmarshal(bs[n:]); err != nil {
		return r, n + n1, err
	}
	n += n1
	if r.TacticDescription, n1, err = ord.String.Unmarshal(bs[n:]); err != nil {
		return r, n + n1, err
	}
	n += n1
	if r.ParentID, n1, err = ord.String.Unmarshal(bs[n:]); err != nil {
		return r, n + n1, err
	}
	n += n1
	if r.ParentName, n1, err = ord.String.Unmarshal(bs[n:]); err != nil {
		return r, n + n1, err
	}
	n += n1
	if r.CompositeText, n1, err = ord.String.Unmarshal(bs[n:]); err != nil {
		return r, n + n1, err
	}
	n += n1
	return r, n, nil
}

func (recordMUS) Size(r Record) (size int) {
	size = ord.String.Size(r.ID)
	size += ord.String.Size(r.Name)
	size += ord.String.Size(r.Description)
	size += varint.Int.Size(int(r.Type))
	size += ord.String.Size(r.TacticID)
	size += ord.String.Size(r.TacticName)
	size += ord.String.Size(r.TacticDescription)
	size += ord.String.Size(r.ParentID)
	size += ord.String.Size(r.ParentName)
	size += ord.String.Size(r.CompositeText)
	return size
}

func (recordMUS) Skip(bs []byte) (n int, err error) {
	var n1 int
	for i := 0; i < 3; i++ {
		if n1, err = ord.String.Skip(bs[n:]); err != nil {
			return n + n1, err
		}
		n += n1
	}
	if n1, err = varint.Int.Skip(bs[n:]); err != nil {
		return n + n1, err
	}
	n += n1
	for i := 0; i < 6; i++ {
		if n1, err = ord.String.Skip(bs[n:]); err != nil {
			return n + n1, err
		}
		n += n1
	}
	return n, nil
}

// IndexSnapshotMUS serializes IndexSnapshot values for the persisted
// embedding index artifact.
var IndexSnapshotMUS = indexSnapshotMUS{}

type indexSnapshotMUS struct{}

func (indexSnapshotMUS) Marshal(s IndexSnapshot, bs []byte) (n int) {
	n = ord.String.Marshal(s.Provider, bs)
	n += ord.String.Marshal(s.Fingerprint, bs[n:])
	n += stringSliceMUS.Marshal(s.RecordIDs, bs[n:])
	n += matrixMUS.Marshal(s.Vectors, bs[n:])
	return n
}

func (indexSnapshotMUS) Unmarshal(bs []byte) (s IndexSnapshot, n int, err error) {
	var n1 int
	if s.Provider, n, err = ord.String.Unmarshal(bs); err != nil {
		return
	}
	if s.Fingerprint, n1, err = ord.String.Unmarshal(bs[n:]); err != nil {
		return s, n + n1, err
	}
	n += n1
	if s.RecordIDs, n1, err = stringSliceMUS.Unmarshal(bs[n:]); err != nil {
		return s, n + n1, err
	}
	n += n1
	if s.Vectors, n1, err = matrixMUS.Unmarshal(bs[n:]); err != nil {
		return s, n + n1, err
	}
	n += n1
	return s, n, nil
}

func (indexSnapshotMUS) Size(s IndexSnapshot) (size int) {
	size = ord.String.Size(s.Provider)
	size += ord.String.Size(s.Fingerprint)
	size += stringSliceMUS.Size(s.RecordIDs)
	size += matrixMUS.Size(s.Vectors)
	return size
}

func (indexSnapshotMUS) Skip(bs []byte) (n int, err error) {
	var n1 int
	for i := 0; i < 2; i++ {
		if n1, err = ord.String.Skip(bs[n:]); err != nil {
			return n + n1, err
		}
		n += n1
	}
	if n1, err = stringSliceMUS.Skip(bs[n:]); err != nil {
		return n + n1, err
	}
	n += n1
	if n1, err = matrixMUS.Skip(bs[n:]); err != nil {
		return n + n1, err
	}
	n += n1
	return n, nil
}
