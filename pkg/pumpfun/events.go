// Package pumpfun holds the events of the pump.fun bonding curve and AMM
// programs. They are decoded alongside the events of the program itself.
package pumpfun

import "github.com/gagliardetto/solana-go"

var (
	ProgramID    = solana.MustPublicKeyFromBase58("6EF8rrecthR5Dkzon8Nwu78hRvfCKubJ14M5uBEwF6P")
	AmmProgramID = solana.MustPublicKeyFromBase58("pAMMBay6oceH9fJKBRHGP5D4bD4sWpmSwMn52FMfXEA")
)

// Event discriminators, little-endian
const (
	TradeEventDiscriminator     uint64 = 0xee61e64ed37fdbbd
	MigrationEventDiscriminator uint64 = 0x94ea945cb95de9bd
	BuyEventDiscriminator       uint64 = 0x7777f52c1f52f467
	SellEventDiscriminator      uint64 = 0x2adc03a50a372f3e
)

// TradeEvent is emitted by the bonding curve program on every buy and sell.
type TradeEvent struct {
	Mint                  solana.PublicKey `json:"mint"`
	SolAmount             uint64           `json:"sol_amount"`
	TokenAmount           uint64           `json:"token_amount"`
	IsBuy                 bool             `json:"is_buy"`
	User                  solana.PublicKey `json:"user"`
	Timestamp             int64            `json:"timestamp"`
	VirtualSolReserves    uint64           `json:"virtual_sol_reserves"`
	VirtualTokenReserves  uint64           `json:"virtual_token_reserves"`
	RealSolReserves       uint64           `json:"real_sol_reserves"`
	RealTokenReserves     uint64           `json:"real_token_reserves"`
	FeeRecipient          solana.PublicKey `json:"fee_recipient"`
	FeeBasisPoints        uint64           `json:"fee_basis_points"`
	Fee                   uint64           `json:"fee"`
	Creator               solana.PublicKey `json:"creator"`
	CreatorFeeBasisPoints uint64           `json:"creator_fee_basis_points"`
	CreatorFee            uint64           `json:"creator_fee"`
	TrackVolume           bool             `json:"track_volume"`
	TotalUnclaimedTokens  uint64           `json:"total_unclaimed_tokens"`
	TotalClaimedTokens    uint64           `json:"total_claimed_tokens"`
	CurrentSolVolume      uint64           `json:"current_sol_volume"`
	LastUpdateTimestamp   int64            `json:"last_update_timestamp"`
}

// MigrationEvent is emitted when a completed curve moves its liquidity to the AMM.
type MigrationEvent struct {
	User             solana.PublicKey `json:"user"`
	Mint             solana.PublicKey `json:"mint"`
	MintAmount       uint64           `json:"mint_amount"`
	SolAmount        uint64           `json:"sol_amount"`
	PoolMigrationFee uint64           `json:"pool_migration_fee"`
	BondingCurve     solana.PublicKey `json:"bonding_curve"`
	Timestamp        int64            `json:"timestamp"`
	Pool             solana.PublicKey `json:"pool"`
}

// BuyEvent is emitted by the AMM program on a buy.
type BuyEvent struct {
	Timestamp                        int64            `json:"timestamp"`
	BaseAmountOut                    uint64           `json:"base_amount_out"`
	MaxQuoteAmountIn                 uint64           `json:"max_quote_amount_in"`
	UserBaseTokenReserves            uint64           `json:"user_base_token_reserves"`
	UserQuoteTokenReserves           uint64           `json:"user_quote_token_reserves"`
	PoolBaseTokenReserves            uint64           `json:"pool_base_token_reserves"`
	PoolQuoteTokenReserves           uint64           `json:"pool_quote_token_reserves"`
	QuoteAmountIn                    uint64           `json:"quote_amount_in"`
	LpFeeBasisPoints                 uint64           `json:"lp_fee_basis_points"`
	LpFee                            uint64           `json:"lp_fee"`
	ProtocolFeeBasisPoints           uint64           `json:"protocol_fee_basis_points"`
	ProtocolFee                      uint64           `json:"protocol_fee"`
	QuoteAmountInWithLpFee           uint64           `json:"quote_amount_in_with_lp_fee"`
	UserQuoteAmountIn                uint64           `json:"user_quote_amount_in"`
	Pool                             solana.PublicKey `json:"pool"`
	User                             solana.PublicKey `json:"user"`
	UserBaseTokenAccount             solana.PublicKey `json:"user_base_token_account"`
	UserQuoteTokenAccount            solana.PublicKey `json:"user_quote_token_account"`
	ProtocolFeeRecipient             solana.PublicKey `json:"protocol_fee_recipient"`
	ProtocolFeeRecipientTokenAccount solana.PublicKey `json:"protocol_fee_recipient_token_account"`
	CoinCreator                      solana.PublicKey `json:"coin_creator"`
	CoinCreatorFeeBasisPoints        uint64           `json:"coin_creator_fee_basis_points"`
	CoinCreatorFee                   uint64           `json:"coin_creator_fee"`
	TrackVolume                      bool             `json:"track_volume"`
	TotalUnclaimedTokens             uint64           `json:"total_unclaimed_tokens"`
	TotalClaimedTokens               uint64           `json:"total_claimed_tokens"`
	CurrentSolVolume                 uint64           `json:"current_sol_volume"`
	LastUpdateTimestamp              int64            `json:"last_update_timestamp"`
}

// SellEvent is emitted by the AMM program on a sell.
type SellEvent struct {
	Timestamp                        int64            `json:"timestamp"`
	BaseAmountIn                     uint64           `json:"base_amount_in"`
	MinQuoteAmountOut                uint64           `json:"min_quote_amount_out"`
	UserBaseTokenReserves            uint64           `json:"user_base_token_reserves"`
	UserQuoteTokenReserves           uint64           `json:"user_quote_token_reserves"`
	PoolBaseTokenReserves            uint64           `json:"pool_base_token_reserves"`
	PoolQuoteTokenReserves           uint64           `json:"pool_quote_token_reserves"`
	QuoteAmountOut                   uint64           `json:"quote_amount_out"`
	LpFeeBasisPoints                 uint64           `json:"lp_fee_basis_points"`
	LpFee                            uint64           `json:"lp_fee"`
	ProtocolFeeBasisPoints           uint64           `json:"protocol_fee_basis_points"`
	ProtocolFee                      uint64           `json:"protocol_fee"`
	QuoteAmountOutWithoutLpFee       uint64           `json:"quote_amount_out_without_lp_fee"`
	UserQuoteAmountOut               uint64           `json:"user_quote_amount_out"`
	Pool                             solana.PublicKey `json:"pool"`
	User                             solana.PublicKey `json:"user"`
	UserBaseTokenAccount             solana.PublicKey `json:"user_base_token_account"`
	UserQuoteTokenAccount            solana.PublicKey `json:"user_quote_token_account"`
	ProtocolFeeRecipient             solana.PublicKey `json:"protocol_fee_recipient"`
	ProtocolFeeRecipientTokenAccount solana.PublicKey `json:"protocol_fee_recipient_token_account"`
	CoinCreator                      solana.PublicKey `json:"coin_creator"`
	CoinCreatorFeeBasisPoints        uint64           `json:"coin_creator_fee_basis_points"`
	CoinCreatorFee                   uint64           `json:"coin_creator_fee"`
}
