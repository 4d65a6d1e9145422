package indexdb

import (
	"database/sql"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"factorish.dev/internal/sim/tuning"
	"factorish.dev/internal/sim/world"
)

func TestSQLiteIndex_WritesTicksAndAudits(t *testing.T) {
	path := filepath.Join(t.TempDir(), "index", "world.sqlite")
	s, err := OpenSQLite(path)
	require.NoError(t, err)

	require.NoError(t, s.UpsertTuning(tuning.Defaults()))
	for i := uint64(1); i <= 3; i++ {
		require.NoError(t, s.WriteTick(world.TickLogEntry{Tick: i, SimTime: 0.1 * float64(i), DeltaTime: 0.1, Structures: 4, Items: int(i), Digest: "d"}))
	}
	require.NoError(t, s.WriteAudit(world.AuditEntry{Tick: 2, Action: "PLACE", Pos: [2]int{3, 4}, Name: "Inserter", OK: true}))
	require.NoError(t, s.WriteAudit(world.AuditEntry{Tick: 2, Action: "HARVEST", Pos: [2]int{3, 4}, Reason: "not found"}))
	require.NoError(t, s.Close())

	// Writes after close are ignored.
	require.NoError(t, s.WriteTick(world.TickLogEntry{Tick: 9}))

	db, err := sql.Open("sqlite", path)
	require.NoError(t, err)
	defer db.Close()

	var n, items int
	require.NoError(t, db.QueryRow(`SELECT COUNT(*), SUM(items) FROM ticks`).Scan(&n, &items))
	assert.Equal(t, 3, n)
	assert.Equal(t, 6, items)

	rows, err := db.Query(`SELECT seq, action, ok, reason FROM audits WHERE x=3 AND y=4 ORDER BY seq`)
	require.NoError(t, err)
	defer rows.Close()
	type audit struct {
		seq    int
		action string
		ok     bool
		reason sql.NullString
	}
	var got []audit
	for rows.Next() {
		var a audit
		require.NoError(t, rows.Scan(&a.seq, &a.action, &a.ok, &a.reason))
		got = append(got, a)
	}
	require.NoError(t, rows.Err())
	require.Len(t, got, 2)
	assert.Equal(t, 0, got[0].seq)
	assert.Equal(t, "PLACE", got[0].action)
	assert.True(t, got[0].ok)
	assert.Equal(t, 1, got[1].seq)
	assert.False(t, got[1].ok)
	assert.Equal(t, "not found", got[1].reason.String)

	var digest string
	require.NoError(t, db.QueryRow(`SELECT digest FROM configs WHERE name='tuning'`).Scan(&digest))
	assert.Len(t, digest, 64)
}

func TestSQLiteIndex_QueueDropStats(t *testing.T) {
	s := &SQLiteIndex{ch: make(chan req, 1)}
	s.ch <- req{kind: reqTick, tick: world.TickLogEntry{Tick: 1}}

	_ = s.WriteTick(world.TickLogEntry{Tick: 2})
	_ = s.WriteAudit(world.AuditEntry{Tick: 2})

	st := s.Stats()
	assert.Equal(t, uint64(1), st.DropTickTotal)
	assert.Equal(t, uint64(1), st.DropAuditTotal)
	assert.Equal(t, 1, st.QueueDepth)
	assert.Equal(t, 1, st.QueueCapacity)
}

func TestOpenSQLite_EmptyPath(t *testing.T) {
	_, err := OpenSQLite("")
	assert.Error(t, err)
}
