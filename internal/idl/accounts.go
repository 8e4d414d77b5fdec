package idl

import (
	"fmt"

	"github.com/gagliardetto/solana-go"
)

// EventAuthoritySeed derives the account that signs self-invoked event logs.
const EventAuthoritySeed = "__event_authority"

var (
	ClockSysvarID               = solana.MustPublicKeyFromBase58("SysvarC1ock11111111111111111111111111111111")
	SystemProgramID             = solana.MustPublicKeyFromBase58("11111111111111111111111111111111")
	AssociatedTokenProgramID    = solana.MustPublicKeyFromBase58("ATokenGPvbdGVxr1b2hvZbsiqW5xWH25efTNsLJA8knL")
	RentSysvarID                = solana.MustPublicKeyFromBase58("SysvarRent111111111111111111111111111111111")
	TokenProgramID              = solana.MustPublicKeyFromBase58("TokenkegQfeZyiNwAJbNbGKPFXCWuBvf9Ss623VQ5DA")
	MetadataProgramID           = solana.MustPublicKeyFromBase58("metaqbxxUerdq28cj1RbAWkYQm3ybzjb6a8bt518x1s")
	UsdcMint                    = solana.MustPublicKeyFromBase58("EPjFWdd5AufqSSqeM2qN1xzybapC8G4wEGGkZwyTDt1v")
	AddressLookupTableProgramID = solana.MustPublicKeyFromBase58("AddressLookupTab1e1111111111111111111111111")
	InstructionsSysvarID        = solana.MustPublicKeyFromBase58("Sysvar1nstructions1111111111111111111111111")
	WrappedSolMint              = solana.MustPublicKeyFromBase58("So11111111111111111111111111111111111111112")
)

// KnownAccounts maps normalized account field names to fixed addresses
type KnownAccounts map[string]solana.PublicKey

// DefaultKnownAccounts returns the well-known addresses for a program:
// sysvars, common programs and mints, plus the program itself and its
// event authority.
func DefaultKnownAccounts(programID solana.PublicKey) (KnownAccounts, error) {
	eventAuthority, _, err := solana.FindProgramAddress([][]byte{[]byte(EventAuthoritySeed)}, programID)
	if err != nil {
		return nil, fmt.Errorf("failed to derive event authority: %w", err)
	}

	return KnownAccounts{
		"clock":                  ClockSysvarID,
		"systemprogram":          SystemProgramID,
		"associatedtokenprogram": AssociatedTokenProgramID,
		"ataprogram":             AssociatedTokenProgramID,
		"rent":                   RentSysvarID,
		"tokenprogram":           TokenProgramID,
		"metadataprogram":        MetadataProgramID,
		"usdcmint":               UsdcMint,
		"altprogram":             AddressLookupTableProgramID,
		"thisprogram":            programID,
		"eventauthority":         eventAuthority,
		"ixsysvar":               InstructionsSysvarID,
		"instructionsysvar":      InstructionsSysvarID,
		"wsolmint":               WrappedSolMint,
	}, nil
}

// Add registers extra addresses under normalized names, overriding defaults.
func (k KnownAccounts) Add(extra map[string]string) error {
	for name, address := range extra {
		key, err := solana.PublicKeyFromBase58(address)
		if err != nil {
			return fmt.Errorf("known account %s: invalid address %q: %w", name, address, err)
		}
		k[accountKey(name)] = key
	}
	return nil
}

// Lookup returns the address of an account field name, if it is well known.
func (k KnownAccounts) Lookup(fieldName string) (string, bool) {
	key, ok := k[accountKey(fieldName)]
	if !ok {
		return "", false
	}
	return key.String(), true
}
