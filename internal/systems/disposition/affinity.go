package disposition

// Enemy types known to the built-in content tables.
const (
	EnemyWolf     = "wolf"
	EnemyBandit   = "bandit"
	EnemyLeshy    = "leshy"
	EnemyRusalka  = "rusalka"
	EnemyUpyr     = "upyr"
	EnemyKikimora = "kikimora"
	EnemyBoyar    = "boyar"
)

type affinityKey struct {
	world     Zone
	enemyType string
}

// affinityTable holds the starting disposition for (hero world, enemy type).
// Negative values start the enemy closer to destruction, positive closer to
// subjugation.
var affinityTable = map[affinityKey]int{
	{ZoneNav, EnemyUpyr}:      15,
	{ZoneNav, EnemyRusalka}:   10,
	{ZoneNav, EnemyKikimora}:  5,
	{ZoneNav, EnemyBoyar}:     -15,
	{ZoneNav, EnemyLeshy}:     -5,
	{ZoneYav, EnemyWolf}:      -10,
	{ZoneYav, EnemyBandit}:    -5,
	{ZoneYav, EnemyBoyar}:     10,
	{ZoneYav, EnemyUpyr}:      -20,
	{ZonePrav, EnemyLeshy}:    20,
	{ZonePrav, EnemyRusalka}:  -10,
	{ZonePrav, EnemyUpyr}:     -25,
	{ZonePrav, EnemyBandit}:   -15,
	{ZonePrav, EnemyKikimora}: -5,
}

// StartingDisposition returns the affinity table value for the pair plus the
// situational modifier. Unknown pairs start neutral. The result is not
// clamped; the Simulation clamps it on construction.
func StartingDisposition(heroWorld Zone, enemyType string, situationModifier int) int {
	return affinityTable[affinityKey{world: heroWorld, enemyType: enemyType}] + situationModifier
}
