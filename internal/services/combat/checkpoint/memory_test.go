package checkpoint

import (
	"testing"

	"github.com/louisbranch/duskmarch/internal/services/combat/storage"
	"github.com/louisbranch/duskmarch/internal/services/combat/storage/storagetest"
)

func TestMemoryStoreContract(t *testing.T) {
	storagetest.Run(t, func(t *testing.T) storage.Store { return NewMemoryStore() })
}
