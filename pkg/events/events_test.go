package events

import (
	"encoding/binary"
	"encoding/json"
	"testing"

	"cidl/pkg/pumpfun"

	"github.com/gagliardetto/solana-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	gameKey = solana.MustPublicKeyFromBase58("So11111111111111111111111111111111111111112")
	userKey = solana.MustPublicKeyFromBase58("TokenkegQfeZyiNwAJbNbGKPFXCWuBvf9Ss623VQ5DA")
)

func u64(v uint64) []byte {
	return binary.LittleEndian.AppendUint64(nil, v)
}

func gameSwapData() []byte {
	var data []byte
	data = append(data, u64(GameSwapEventDiscriminator)...)
	data = append(data, gameKey[:]...)
	data = append(data, userKey[:]...)
	data = append(data, u64(1_000)...)
	data = append(data, u64(2_000)...)
	data = append(data, u64(30)...)
	data = append(data, u64(1<<63+5)...)
	data = append(data, 1)
	return append(data, make([]byte, 7)...)
}

func TestDecodeEventData(t *testing.T) {
	ev, err := DecodeEventData(gameSwapData())
	require.NoError(t, err)

	swap, ok := ev.(GameSwapEvent)
	require.True(t, ok)
	assert.Equal(t, gameKey, swap.Game)
	assert.Equal(t, userKey, swap.User)
	assert.Equal(t, uint64(1_000), swap.IvyBalance)
	assert.Equal(t, uint64(1<<63+5), swap.GameAmount)
	assert.True(t, swap.IsBuy)
	assert.Equal(t, SourceProgram, SourceOf(swap))
}

func TestDecodeEventDataString(t *testing.T) {
	var data []byte
	data = append(data, u64(CommentEventDiscriminator)...)
	data = append(data, gameKey[:]...)
	data = append(data, userKey[:]...)
	data = append(data, u64(3)...)
	data = append(data, u64(1_700_000_000)...)
	data = binary.LittleEndian.AppendUint32(data, 5)
	data = append(data, "hello"...)

	ev, err := DecodeEventData(data)
	require.NoError(t, err)
	assert.Equal(t, CommentEvent{
		Game:         gameKey,
		User:         userKey,
		CommentIndex: 3,
		Timestamp:    1_700_000_000,
		Text:         "hello",
	}, ev)
}

func TestDecodeEventDataAuxiliary(t *testing.T) {
	var data []byte
	data = append(data, u64(pumpfun.MigrationEventDiscriminator)...)
	data = append(data, userKey[:]...)
	data = append(data, gameKey[:]...)
	data = append(data, u64(10)...)
	data = append(data, u64(20)...)
	data = append(data, u64(30)...)
	data = append(data, gameKey[:]...)
	data = append(data, u64(1_700_000_000)...)
	data = append(data, userKey[:]...)

	ev, err := DecodeEventData(data)
	require.NoError(t, err)

	migration, ok := ev.(PfMigrationEvent)
	require.True(t, ok)
	assert.Equal(t, userKey, migration.User)
	assert.Equal(t, uint64(20), migration.SolAmount)
	assert.Equal(t, int64(1_700_000_000), migration.Timestamp)
	assert.Equal(t, SourcePf, SourceOf(migration))
}

func TestDecodeEventDataEdgeCases(t *testing.T) {
	_, err := DecodeEventData([]byte{1, 2, 3})
	assert.ErrorIs(t, err, ErrDataTooShort)

	ev, err := DecodeEventData(u64(0xdeadbeef))
	assert.NoError(t, err)
	assert.Nil(t, ev)

	_, err = DecodeEventData(gameSwapData()[:20])
	assert.Error(t, err)
}

func TestSourceOf(t *testing.T) {
	assert.Equal(t, SourcePa, SourceOf(PaSellEvent{}))
	assert.Equal(t, SourceFx, SourceOf(SolPriceEvent{Price: 150.5}))
	assert.Equal(t, SourceMisc, SourceOf(InitializeEvent{}))
	assert.Equal(t, SourceMisc, SourceOf(HydrateEvent{}))
}

func TestEventJSON(t *testing.T) {
	data, err := DecodeEventData(gameSwapData())
	require.NoError(t, err)

	event := Event{Data: data, Timestamp: 1_700_000_000}
	encoded, err := json.Marshal(event)
	require.NoError(t, err)

	var raw map[string]any
	require.NoError(t, json.Unmarshal(encoded, &raw))
	assert.Equal(t, GameSwapEventName, raw["name"])
	assert.Equal(t, "1700000000", raw["timestamp"])

	fields := raw["data"].(map[string]any)
	assert.Equal(t, "9223372036854775813", fields["gameAmount"])
	assert.Equal(t, gameKey.String(), fields["game"])
	assert.Equal(t, true, fields["isBuy"])

	var decoded Event
	require.NoError(t, json.Unmarshal(encoded, &decoded))
	assert.Equal(t, event, decoded)
}

func TestEventJSONSynthetic(t *testing.T) {
	event := Event{Data: HydrateEvent{Asset: gameKey, MetadataURL: "https://x/m.json", IconURL: "https://x/i.png"}}
	encoded, err := json.Marshal(event)
	require.NoError(t, err)
	assert.Contains(t, string(encoded), `"metadataUrl":"https://x/m.json"`)

	var decoded Event
	require.NoError(t, json.Unmarshal(encoded, &decoded))
	assert.Equal(t, event, decoded)
}

func TestDecodeEventJSONErrors(t *testing.T) {
	_, err := DecodeEventJSON("tradeEvent", []byte(`{}`))
	assert.ErrorIs(t, err, ErrUnknownEventType)

	_, err = DecodeEventJSON(GameSwapEventName, []byte(`{"ivyBalance": 5}`))
	assert.Error(t, err)

	ev, err := DecodeEventJSON(PfTradeEventName, []byte(`{"sol_amount": 7, "is_buy": true}`))
	require.NoError(t, err)
	assert.Equal(t, uint64(7), ev.(PfTradeEvent).SolAmount)

	_, err = json.Marshal(Event{})
	assert.Error(t, err)
}
