package movecodec

import (
	"encoding/json"
	"testing"

	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/stretchr/testify/require"

	"github.com/x-xyz/marketclient/domain"
)

func raw(s string) json.RawMessage {
	return json.RawMessage(s)
}

func TestText(t *testing.T) {
	req := require.New(t)

	s, err := Text("name", raw(`"0x48656c6c6f"`))
	req.NoError(err)
	req.Equal("Hello", s)

	s, err = HexText("name", "48656c6c6f")
	req.NoError(err)
	req.Equal("Hello", s, "bare hex is accepted")

	s, err = Text("name", raw(`"0x"`))
	req.NoError(err)
	req.Equal("", s)

	_, err = Text("name", raw(`"0x48656c6c6"`))
	req.True(domain.IsDecodeError(err))
	req.ErrorIs(err, hexutil.ErrOddLength)

	_, err = Text("name", raw(`"0xzz"`))
	req.True(domain.IsDecodeError(err))

	_, err = Text("name", raw(`"0xff"`))
	req.ErrorIs(err, ErrInvalidUTF8)

	_, err = Text("name", raw(`12`))
	req.ErrorIs(err, ErrNotString)

	var de *domain.DecodeError
	_, err = Text("description", raw(`"0x1"`))
	req.ErrorAs(err, &de)
	req.Equal("description", de.Field)
}

func TestEncodeText(t *testing.T) {
	req := require.New(t)
	req.Equal("0x48656c6c6f", EncodeText("Hello"))
	s, err := HexText("x", EncodeText("gift for you ✨"))
	req.NoError(err)
	req.Equal("gift for you ✨", s)
}

func TestU64(t *testing.T) {
	req := require.New(t)

	v, err := U64("id", raw(`"18446744073709551615"`))
	req.NoError(err)
	req.Equal(uint64(18446744073709551615), v)

	v, err = U64("id", raw(`42`))
	req.NoError(err)
	req.Equal(uint64(42), v)

	_, err = U64("id", raw(`"-1"`))
	req.True(domain.IsDecodeError(err))

	_, err = U64("id", raw(`true`))
	req.True(domain.IsDecodeError(err))
}

func TestInt64(t *testing.T) {
	req := require.New(t)

	v, err := Int64("end_time", raw(`"9223372036854775807"`))
	req.NoError(err)
	req.Equal(int64(9223372036854775807), v)

	_, err = Int64("end_time", raw(`"9223372036854775808"`))
	req.True(domain.IsDecodeError(err))
	req.ErrorIs(err, ErrOutOfRange)
}

func TestAmount(t *testing.T) {
	req := require.New(t)

	a, err := Amount("price", raw(`"150000000"`))
	req.NoError(err)
	req.Equal("150000000", a.RawString())
	req.Equal("1.5", a.Display().String())

	_, err = Amount("price", raw(`"1.5"`))
	req.True(domain.IsDecodeError(err))
}

func TestBoolAndAddress(t *testing.T) {
	req := require.New(t)

	b, err := Bool("for_sale", raw(`true`))
	req.NoError(err)
	req.True(b)

	_, err = Bool("for_sale", raw(`"true"`))
	req.True(domain.IsDecodeError(err))

	a, err := Address("owner", raw(`"0xABCD"`))
	req.NoError(err)
	req.Equal(domain.Address("0xabcd"), a)

	_, err = Address("owner", raw(`"nope"`))
	req.ErrorIs(err, ErrInvalidAddress)
}

func TestVectors(t *testing.T) {
	req := require.New(t)

	ids, err := U64Vector("ids", raw(`["1","5","9"]`))
	req.NoError(err)
	req.Equal([]uint64{1, 5, 9}, ids)

	_, err = U64Vector("ids", raw(`["1","x"]`))
	var de *domain.DecodeError
	req.ErrorAs(err, &de)
	req.Equal("ids[1]", de.Field)

	addrs, err := AddressVector("whitelist", raw(`["0x1","0xB"]`))
	req.NoError(err)
	req.Equal([]domain.Address{"0x1", "0xb"}, addrs)

	req.NoError(Record("details", []json.RawMessage{raw(`1`), raw(`2`)}, 2))
	req.ErrorIs(Record("details", []json.RawMessage{raw(`1`)}, 2), ErrShortRecord)
}
