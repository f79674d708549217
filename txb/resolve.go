package txb

import (
	"context"
	"fmt"

	"github.com/originbyte/ob-sdk-go/movetype"
	"github.com/originbyte/ob-sdk-go/suiclient"
)

// ObjectGetter looks up several objects at once. *suiclient.Client
// implements it.
type ObjectGetter interface {
	MultiGetObjects(ctx context.Context, ids []string, opts suiclient.ObjectDataOptions) ([]suiclient.ObjectResponse, error)
}

// Resolve looks up the objects that were added by id. Shared objects are
// taken by mutable reference, everything else by its current version.
func (tx *Transaction) Resolve(ctx context.Context, getter ObjectGetter) error {
	var (
		ids     []string
		indexes []int
	)
	for i, in := range tx.inputs {
		if !in.Resolved() {
			ids = append(ids, in.ObjectID.String())
			indexes = append(indexes, i)
		}
	}
	if len(ids) == 0 {
		return nil
	}

	objects, err := getter.MultiGetObjects(ctx, ids, suiclient.ObjectDataOptions{ShowOwner: true})
	if err != nil {
		return fmt.Errorf("resolving objects: %w", err)
	}
	if len(objects) != len(ids) {
		return fmt.Errorf("resolving objects: got %d objects, expected %d", len(objects), len(ids))
	}
	for i, obj := range objects {
		arg, err := objectArgOf(obj)
		if err != nil {
			return fmt.Errorf("resolving object %s: %w", ids[i], err)
		}
		tx.inputs[indexes[i]].Object = arg
	}
	return nil
}

func objectArgOf(obj suiclient.ObjectResponse) (*ObjectArg, error) {
	if obj.Error != nil {
		return nil, obj.Error
	}
	if obj.Data == nil {
		return nil, fmt.Errorf("no object data")
	}
	id, err := movetype.ParseAddress(obj.Data.ObjectID)
	if err != nil {
		return nil, err
	}
	if obj.Data.Owner.IsShared() {
		return &ObjectArg{Kind: SharedObject, Shared: SharedObjectRef{
			ObjectID:             id,
			InitialSharedVersion: uint64(obj.Data.Owner.Shared.InitialSharedVersion),
			Mutable:              true,
		}}, nil
	}
	digest, err := ParseDigest(obj.Data.Digest)
	if err != nil {
		return nil, err
	}
	return &ObjectArg{Kind: ImmOrOwnedObject, Ref: ObjectRef{
		ObjectID: id,
		Version:  uint64(obj.Data.Version),
		Digest:   digest,
	}}, nil
}
