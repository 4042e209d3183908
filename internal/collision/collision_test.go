package collision

import (
	"testing"

	"github.com/vovakirdan/tui-r42/internal/core"
)

func box(l, t, r, b float64) core.Rectangle {
	return core.Rectangle{Left: l, Top: t, Right: r, Bottom: b}
}

func TestScan(t *testing.T) {
	player := box(50, 50, 60, 60)
	bullet := box(20, 20, 21, 22)

	tests := []struct {
		name         string
		targets      []Target
		checkPlayer  bool
		checkBullet  bool
		wantPlayer   bool
		wantBullet   bool
		wantBulletID int
	}{
		{
			name:    "nothing overlaps",
			targets: []Target{{Kind: Enemy, EnemyID: 1, Box: box(0, 0, 5, 5)}},
			checkPlayer: true, checkBullet: true,
		},
		{
			name:    "enemy hits player",
			targets: []Target{{Kind: Enemy, EnemyID: 1, Box: box(55, 55, 65, 65)}},
			checkPlayer: true, checkBullet: true,
			wantPlayer: true,
		},
		{
			name:    "touching edges do not collide",
			targets: []Target{{Kind: Enemy, EnemyID: 1, Box: box(60, 50, 70, 60)}},
			checkPlayer: true, checkBullet: true,
		},
		{
			name:    "shrapnel hits player",
			targets: []Target{{Kind: Particle, Box: box(52, 52, 53, 53)}},
			checkPlayer: true, checkBullet: true,
			wantPlayer: true,
		},
		{
			name:    "bullet ignores particles",
			targets: []Target{{Kind: Particle, Box: box(19, 19, 22, 22)}},
			checkPlayer: true, checkBullet: true,
		},
		{
			name: "bullet consumed by first enemy",
			targets: []Target{
				{Kind: Enemy, EnemyID: 1, Box: box(18, 18, 24, 24)},
				{Kind: Enemy, EnemyID: 2, Box: box(19, 19, 23, 23)},
			},
			checkPlayer: true, checkBullet: true,
			wantBullet: true, wantBulletID: 1,
		},
		{
			name:    "immortal player",
			targets: []Target{{Kind: Enemy, EnemyID: 1, Box: box(55, 55, 65, 65)}},
			checkPlayer: false, checkBullet: true,
		},
		{
			name:    "no bullet in flight",
			targets: []Target{{Kind: Enemy, EnemyID: 3, Box: box(18, 18, 24, 24)}},
			checkPlayer: true, checkBullet: false,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			r := Scan(tc.targets, player, tc.checkPlayer, bullet, tc.checkBullet)
			if r.PlayerHit != tc.wantPlayer {
				t.Errorf("PlayerHit = %v, expected %v", r.PlayerHit, tc.wantPlayer)
			}
			if r.BulletHit != tc.wantBullet {
				t.Errorf("BulletHit = %v, expected %v", r.BulletHit, tc.wantBullet)
			}
			if tc.wantBullet && r.BulletTarget.EnemyID != tc.wantBulletID {
				t.Errorf("bullet hit enemy %d, expected %d", r.BulletTarget.EnemyID, tc.wantBulletID)
			}
		})
	}
}
