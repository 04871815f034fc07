package game_constants

// Core deck and table parameters for Center Coin.
const DECK_SIZE = 90
const COINS_PER_PLAYER = 2
const MIN_PLAYERS_TO_START = 2

// Every player enters the room with this wallet; it is also the baseline
// used for profit computation when the game ends.
const STARTING_WALLET = 100

const DEFAULT_ENTRY_FEE = 5

const ROOM_CODE_LENGTH = 4

// Retries for the compare-and-set room update before giving up.
const MAX_UPDATE_RETRIES = 3
