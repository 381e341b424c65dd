package host

import "houndfall/internal/core"

// EnemyDTO is one wolf's wire-format state.
type EnemyDTO struct {
	X  float32 `json:"x"`
	Y  float32 `json:"y"`
	VX float32 `json:"vx"`
	VY float32 `json:"vy"`
}

// SnapshotDTO flattens Core's read accessors (spec.md §6's Read API)
// into the one JSON document the reference shell sends over HTTP and
// WebSocket. A real host in another language would call the
// accessors directly; this shell exists to prove the contract is
// drivable over the wire at all.
type SnapshotDTO struct {
	Tick uint64 `json:"tick"`

	X             float32 `json:"x"`
	Y             float32 `json:"y"`
	VelX          float32 `json:"velX"`
	VelY          float32 `json:"velY"`
	IsGrounded    bool    `json:"isGrounded"`
	JumpCount     int32   `json:"jumpCount"`
	IsWallSliding bool    `json:"isWallSliding"`

	HP      float32 `json:"hp"`
	MaxHP   float32 `json:"maxHp"`
	Stamina float32 `json:"stamina"`

	IsRolling     bool   `json:"isRolling"`
	BlockState    bool   `json:"blockState"`
	PlayerAnim    uint32 `json:"playerAnim"`
	CharacterType uint32 `json:"characterType"`

	Enemies []EnemyDTO `json:"enemies"`
}

// buildSnapshotDTO reads every Core accessor needed for the wire
// format. Called under the Server's lock, since Core is not safe for
// concurrent access (spec.md §5: "concurrent reads during a tick are
// forbidden").
func buildSnapshotDTO(c *core.Core, tick uint64) SnapshotDTO {
	n := int(c.GetEnemyCount())
	enemies := make([]EnemyDTO, n)
	for i := 0; i < n; i++ {
		enemies[i] = EnemyDTO{
			X: c.GetEnemyX(i), Y: c.GetEnemyY(i),
			VX: c.GetEnemyVX(i), VY: c.GetEnemyVY(i),
		}
	}

	return SnapshotDTO{
		Tick: tick,

		X: c.GetX(), Y: c.GetY(),
		VelX: c.GetVelX(), VelY: c.GetVelY(),
		IsGrounded:    c.GetIsGrounded(),
		JumpCount:     c.GetJumpCount(),
		IsWallSliding: c.GetIsWallSliding(),

		HP: c.GetHP(), MaxHP: c.GetMaxHP(), Stamina: c.GetStamina(),

		IsRolling:     c.GetIsRolling(),
		BlockState:    c.GetBlockState(),
		PlayerAnim:    c.GetPlayerAnimState(),
		CharacterType: c.GetCharacterType(),

		Enemies: enemies,
	}
}
