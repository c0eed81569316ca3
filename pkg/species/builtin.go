package species

// Builtin returns the first-generation catalog shipped with the service.
// Evolutions that are stone, trade or branch based in the games are mapped
// onto a fixed level so that every line can progress through steps alone;
// Eevee follows its Vaporeon branch.
func Builtin() *Catalog {
	return NewCatalog(builtinEntries)
}

var builtinEntries = []Species{
	evolving(1, "Bulbasaur", 2, 16),
	evolving(2, "Ivysaur", 3, 32),
	terminal(3, "Venusaur"),
	evolving(4, "Charmander", 5, 16),
	evolving(5, "Charmeleon", 6, 36),
	terminal(6, "Charizard"),
	evolving(7, "Squirtle", 8, 16),
	evolving(8, "Wartortle", 9, 36),
	terminal(9, "Blastoise"),
	evolving(10, "Caterpie", 11, 7),
	evolving(11, "Metapod", 12, 10),
	terminal(12, "Butterfree"),
	evolving(13, "Weedle", 14, 7),
	evolving(14, "Kakuna", 15, 10),
	terminal(15, "Beedrill"),
	evolving(16, "Pidgey", 17, 18),
	evolving(17, "Pidgeotto", 18, 36),
	terminal(18, "Pidgeot"),
	evolving(19, "Rattata", 20, 20),
	terminal(20, "Raticate"),
	evolving(21, "Spearow", 22, 20),
	terminal(22, "Fearow"),
	evolving(23, "Ekans", 24, 22),
	terminal(24, "Arbok"),
	evolving(25, "Pikachu", 26, 30),
	terminal(26, "Raichu"),
	evolving(27, "Sandshrew", 28, 22),
	terminal(28, "Sandslash"),
	evolving(29, "Nidoran-F", 30, 16),
	evolving(30, "Nidorina", 31, 30),
	terminal(31, "Nidoqueen"),
	evolving(32, "Nidoran-M", 33, 16),
	evolving(33, "Nidorino", 34, 30),
	terminal(34, "Nidoking"),
	evolving(35, "Clefairy", 36, 30),
	terminal(36, "Clefable"),
	evolving(37, "Vulpix", 38, 30),
	terminal(38, "Ninetales"),
	evolving(39, "Jigglypuff", 40, 30),
	terminal(40, "Wigglytuff"),
	evolving(41, "Zubat", 42, 22),
	terminal(42, "Golbat"),
	evolving(43, "Oddish", 44, 21),
	evolving(44, "Gloom", 45, 30),
	terminal(45, "Vileplume"),
	evolving(46, "Paras", 47, 24),
	terminal(47, "Parasect"),
	evolving(48, "Venonat", 49, 31),
	terminal(49, "Venomoth"),
	evolving(50, "Diglett", 51, 26),
	terminal(51, "Dugtrio"),
	evolving(52, "Meowth", 53, 28),
	terminal(53, "Persian"),
	evolving(54, "Psyduck", 55, 33),
	terminal(55, "Golduck"),
	evolving(56, "Mankey", 57, 28),
	terminal(57, "Primeape"),
	evolving(58, "Growlithe", 59, 30),
	terminal(59, "Arcanine"),
	evolving(60, "Poliwag", 61, 25),
	evolving(61, "Poliwhirl", 62, 35),
	terminal(62, "Poliwrath"),
	evolving(63, "Abra", 64, 16),
	evolving(64, "Kadabra", 65, 36),
	terminal(65, "Alakazam"),
	evolving(66, "Machop", 67, 28),
	evolving(67, "Machoke", 68, 40),
	terminal(68, "Machamp"),
	evolving(69, "Bellsprout", 70, 21),
	evolving(70, "Weepinbell", 71, 30),
	terminal(71, "Victreebel"),
	evolving(72, "Tentacool", 73, 30),
	terminal(73, "Tentacruel"),
	evolving(74, "Geodude", 75, 25),
	evolving(75, "Graveler", 76, 40),
	terminal(76, "Golem"),
	evolving(77, "Ponyta", 78, 40),
	terminal(78, "Rapidash"),
	evolving(79, "Slowpoke", 80, 37),
	terminal(80, "Slowbro"),
	evolving(81, "Magnemite", 82, 30),
	terminal(82, "Magneton"),
	terminal(83, "Farfetchd"),
	evolving(84, "Doduo", 85, 31),
	terminal(85, "Dodrio"),
	evolving(86, "Seel", 87, 34),
	terminal(87, "Dewgong"),
	evolving(88, "Grimer", 89, 38),
	terminal(89, "Muk"),
	evolving(90, "Shellder", 91, 30),
	terminal(91, "Cloyster"),
	evolving(92, "Gastly", 93, 25),
	evolving(93, "Haunter", 94, 40),
	terminal(94, "Gengar"),
	terminal(95, "Onix"),
	evolving(96, "Drowzee", 97, 26),
	terminal(97, "Hypno"),
	evolving(98, "Krabby", 99, 28),
	terminal(99, "Kingler"),
	evolving(100, "Voltorb", 101, 30),
	terminal(101, "Electrode"),
	evolving(102, "Exeggcute", 103, 30),
	terminal(103, "Exeggutor"),
	evolving(104, "Cubone", 105, 28),
	terminal(105, "Marowak"),
	terminal(106, "Hitmonlee"),
	terminal(107, "Hitmonchan"),
	terminal(108, "Lickitung"),
	evolving(109, "Koffing", 110, 35),
	terminal(110, "Weezing"),
	evolving(111, "Rhyhorn", 112, 42),
	terminal(112, "Rhydon"),
	terminal(113, "Chansey"),
	terminal(114, "Tangela"),
	terminal(115, "Kangaskhan"),
	evolving(116, "Horsea", 117, 32),
	terminal(117, "Seadra"),
	evolving(118, "Goldeen", 119, 33),
	terminal(119, "Seaking"),
	evolving(120, "Staryu", 121, 30),
	terminal(121, "Starmie"),
	terminal(122, "Mr-Mime"),
	terminal(123, "Scyther"),
	terminal(124, "Jynx"),
	terminal(125, "Electabuzz"),
	terminal(126, "Magmar"),
	terminal(127, "Pinsir"),
	terminal(128, "Tauros"),
	evolving(129, "Magikarp", 130, 20),
	terminal(130, "Gyarados"),
	terminal(131, "Lapras"),
	eggless(132, "Ditto"),
	evolving(133, "Eevee", 134, 30),
	terminal(134, "Vaporeon"),
	terminal(135, "Jolteon"),
	terminal(136, "Flareon"),
	terminal(137, "Porygon"),
	evolving(138, "Omanyte", 139, 40),
	terminal(139, "Omastar"),
	evolving(140, "Kabuto", 141, 40),
	terminal(141, "Kabutops"),
	terminal(142, "Aerodactyl"),
	terminal(143, "Snorlax"),
	eggless(144, "Articuno"),
	eggless(145, "Zapdos"),
	eggless(146, "Moltres"),
	evolving(147, "Dratini", 148, 30),
	evolving(148, "Dragonair", 149, 55),
	terminal(149, "Dragonite"),
	eggless(150, "Mewtwo"),
	eggless(151, "Mew"),
}

func evolving(id int, name string, to int, level int) Species {
	return Species{ID: FormatID(id), Name: name, EvolvesTo: FormatID(to), EvolutionLevel: level, HasEgg: true}
}

func terminal(id int, name string) Species {
	return Species{ID: FormatID(id), Name: name, EvolutionLevel: NoEvolution, HasEgg: true}
}

// eggless species are legendaries and Ditto, which always appear hatched.
func eggless(id int, name string) Species {
	return Species{ID: FormatID(id), Name: name, EvolutionLevel: NoEvolution}
}
