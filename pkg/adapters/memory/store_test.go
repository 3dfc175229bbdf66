package memory_test

import (
	"testing"

	"github.com/iconlint/iconlint/pkg/adapters/memory"
	"github.com/iconlint/iconlint/pkg/ports"
)

func TestMemoryStore_Contract(t *testing.T) {
	ports.RunRunStoreContract(t, memory.NewStore())
}
