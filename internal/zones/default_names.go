package zones

// defaultZoneNames is the built-in NYC taxi zone name table, used
// when no zone geometry file has been loaded. Ids match the TLC
// location ids carried on every trip record.
var defaultZoneNames = map[int]string{
	1:   "Newark Airport",
	2:   "Jamaica Bay",
	3:   "Allerton/Pelham Gardens",
	4:   "Alphabet City",
	5:   "Arden Heights",
	6:   "Arrochar/Fort Wadsworth",
	7:   "Astoria",
	8:   "Astoria Park",
	9:   "Auburndale",
	10:  "Baisley Park",
	11:  "Bath Beach",
	12:  "Battery Park",
	13:  "Battery Park City",
	14:  "Bay Ridge",
	15:  "Bay Terrace/Fort Totten",
	16:  "Bayside",
	17:  "Bedford",
	18:  "Bedford Park",
	19:  "Bellerose",
	20:  "Belmont",
	21:  "Bensonhurst East",
	22:  "Bensonhurst West",
	23:  "Bloomfield/Emerson Hill",
	24:  "Bloomingdale",
	25:  "Boerum Hill",
	26:  "Borough Park",
	27:  "Breezy Point/Fort Tilden/Riis Beach",
	28:  "Brighton Beach",
	29:  "Broad Channel",
	30:  "Bronx Park",
	31:  "Bronxdale",
	32:  "Brooklyn Heights",
	33:  "Brooklyn Navy Yard",
	34:  "Brownsville",
	35:  "Bushwick North",
	36:  "Bushwick South",
	37:  "Cambria Heights",
	38:  "Canarsie",
	39:  "Carroll Gardens",
	40:  "Central Harlem",
	41:  "Central Harlem North",
	42:  "Central Park",
	43:  "Charleston/Tottenville",
	44:  "Chinatown",
	45:  "City Island",
	46:  "Claremont/Bathgate",
	47:  "Clinton East",
	48:  "Clinton West",
	49:  "Co-Op City",
	50:  "Cobble Hill",
	51:  "College Point",
	52:  "Columbia Street",
	53:  "Coney Island",
	54:  "Corona",
	55:  "Country Club",
	56:  "Crotona Park",
	57:  "Crotona Park East",
	58:  "Crown Heights North",
	59:  "Crown Heights South",
	60:  "Cypress Hills",
	61:  "DUMBO/Vinegar Hill",
	62:  "Douglaston",
	63:  "Downtown Brooklyn/MetroTech",
	64:  "Dyker Heights",
	65:  "East Chelsea",
	66:  "East Concourse/Concourse Village",
	67:  "East Elmhurst",
	68:  "East Flatbush/Farragut",
	69:  "East Flatbush/Remsen Village",
	70:  "East Harlem North",
	71:  "East Harlem South",
	72:  "East New York",
	73:  "East New York/Pennsylvania Avenue",
	74:  "East Tremont",
	75:  "East Village",
	76:  "East Williamsburg",
	77:  "Eastchester",
	78:  "Elmhurst",
	79:  "Elmhurst/Maspeth",
	80:  "Eltingville/Annadale/Prince's Bay",
	81:  "Far Rockaway",
	82:  "Financial District North",
	83:  "Financial District South",
	84:  "Flatbush/Ditmas Park",
	85:  "Flatiron",
	86:  "Flatlands",
	87:  "Flushing",
	88:  "Flushing Meadows-Corona Park",
	89:  "Fordham South",
	90:  "Forest Hills",
	91:  "Fort Greene",
	92:  "Fresh Meadows",
	93:  "Freshkills Park",
	94:  "Garment District",
	95:  "Glen Oaks",
	96:  "Glendale",
	97:  "Governor's Island/Ellis Island/Liberty Island",
	98:  "Gowanus",
	99:  "Gramercy",
	100: "Gravesend",
	101: "Great Kills",
	102: "Greenpoint",
	103: "Greenwich Village North",
	104: "Greenwich Village South",
	105: "Grymes Hill/Clifton",
	106: "Hamilton Heights",
	107: "Hammels/Arverne",
	108: "Hampton Bays",
	109: "Heartland Village/Todt Hill",
	110: "Highbridge",
	111: "Hollis",
	112: "Homecrest",
	113: "Howard Beach",
	114: "Hunts Point",
	115: "Inwood",
	116: "Inwood Hill Park",
	117: "Jackson Heights",
	118: "Jamaica",
	119: "Jamaica Estates",
	120: "JFK Airport",
	121: "Kensington",
	122: "Kew Gardens",
	123: "Kew Gardens Hills",
	124: "Kingsbridge Heights",
	125: "Kips Bay",
	126: "LaGuardia Airport",
	127: "Laurelton",
	128: "Lenox Hill East",
	129: "Lenox Hill West",
	130: "Lincoln Square East",
	131: "Lincoln Square West",
	132: "Little Italy/NoLiTa",
	133: "Long Island City/Hunters Point",
	134: "Long Island City/Queens Plaza",
	135: "Longwood",
	136: "Lower East Side",
	137: "Madison",
	138: "Manhattanville",
	139: "Marble Hill",
	140: "Marine Park/Floyd Bennett Field",
	141: "Mariners Harbor",
	142: "Maspeth",
	143: "Meatpacking/West Village West",
	144: "Melrose South",
	145: "Middle Village",
	146: "Midtown Center",
	147: "Midtown East",
	148: "Midtown North",
	149: "Midtown South",
	150: "Midwood",
	151: "Morningside Heights",
	152: "Morrisania/Melrose",
	153: "Mott Haven/Port Morris",
	154: "Mount Hope",
	155: "Murray Hill",
	156: "Murray Hill-Queens",
	157: "New Dorp/Midland Beach",
	158: "New Springville/Bloomfield/Travis",
	159: "North Corona",
	160: "Norwood",
	161: "Oakland Gardens",
	162: "Oakwood",
	163: "Ocean Hill",
	164: "Ocean Parkway South",
	165: "Old Astoria",
	166: "Ozone Park",
	167: "Park Slope",
	168: "Parkchester",
	169: "Pelham Bay",
	170: "Pelham Bay Park",
	171: "Pelham Parkway",
	172: "Penn Station/Madison Sq West",
	173: "Port Richmond",
	174: "Prospect-Lefferts Gardens",
	175: "Prospect Heights",
	176: "Prospect Park",
	177: "Queens Village",
	178: "Queensboro Hill",
	179: "Queensbridge/Ravenswood",
	180: "Randalls Island",
	181: "Red Hook",
	182: "Rego Park",
	183: "Richmond Hill",
	184: "Ridgewood",
	185: "Rikers Island",
	186: "Riverdale/North Riverdale/Fieldston",
	187: "Rockaway Park",
	188: "Roosevelt Island",
	189: "Rosedale",
	190: "Rossville/Woodrow",
	191: "Saint Albans",
	192: "Saint George/New Brighton",
	193: "Saint Michaels Cemetery/Woodside",
	194: "Schuylerville/Throgs Neck/Edgewater Park",
	195: "Seagate/Coney Island",
	196: "Sheepshead Bay",
	197: "SoHo",
	198: "Soundview/Bruckner",
	199: "Soundview/Castle Hill",
	200: "South Beach/Dongan Hills",
	201: "South Jamaica",
	202: "South Ozone Park",
	203: "South Williamsburg",
	204: "Springfield Gardens North",
	205: "Springfield Gardens South",
	206: "Spuyten Duyvil/Kingsbridge",
	207: "Stapleton",
	208: "Stuy Town/Peter Cooper Village",
	209: "Stuyvesant Heights",
	210: "Sunnyside",
	211: "Sunset Park East",
	212: "Sunset Park West",
	213: "Sutton Place/Turtle Bay East",
	214: "Theater District",
	215: "Times Sq/Theatre District",
	216: "TriBeCa/Civic Center",
	217: "Two Bridges/Seward Park",
	218: "Union Sq",
	219: "University Heights/Morris Heights",
	220: "Upper East Side North",
	221: "Upper East Side South",
	222: "Upper West Side North",
	223: "Upper West Side South",
	224: "Van Cortlandt Village",
	225: "Van Cortlandt Park",
	226: "Van Nest/Morris Park",
	227: "Washington Heights North",
	228: "Washington Heights South",
	229: "West Brighton",
	230: "West Chelsea/Hudson Yards",
	231: "West Concourse",
	232: "West Farms/Bronx River",
	233: "West Village",
	234: "Westchester Village/Unionport",
	235: "Westerleigh",
	236: "Whitestone",
	237: "Willets Point",
	238: "Williamsbridge/Olinville",
	239: "Williamsburg (North Side)",
	240: "Williamsburg (South Side)",
	241: "Windsor Terrace",
	242: "Woodhaven",
	243: "Woodlawn/Wakefield",
	244: "Woodside",
	245: "World Trade Center",
	246: "Yorkville East",
	247: "Yorkville West",
	248: "Allerton/Pelham Gardens",
	249: "Kingsbridge Heights",
	250: "Borough Park",
	251: "Canarsie",
	252: "Sheepshead Bay",
	253: "Park Slope",
	254: "Crown Heights South",
	255: "East New York",
	256: "Flatbush/Ditmas Park",
	257: "Sunset Park West",
	258: "Bensonhurst East",
	259: "Bay Ridge",
	260: "Red Hook",
	261: "Carroll Gardens",
	262: "DUMBO/Vinegar Hill",
	263: "Downtown Brooklyn/MetroTech",
	264: "Fort Greene",
	265: "Boerum Hill",
}
