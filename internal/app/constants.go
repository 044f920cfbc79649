package app

// MinPlayersToStartGame defines the minimum number of seats required to start a game.
const MinPlayersToStartGame = 2

// FirstSeat opens every game. The classic rule that the holder of the Three
// of Diamonds leads is not applied.
const FirstSeat = 0
