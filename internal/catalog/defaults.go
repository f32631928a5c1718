package catalog

// defaultCrafts is the built-in craft data set used on first run, before
// any persisted state or market refresh exists. Prices are point-in-time
// and drift quickly; a refresh replaces all of this.
var defaultCrafts = map[string][]Craft{
	"medstation": {
		{ID: "med1", Name: "Salewa first aid kit", MaterialCost: 23272, SellPrice: 16666, OutputQuantity: 1, CraftTime: 36, Source: SourceManual},
		{ID: "med2", Name: "CMS surgical kit", MaterialCost: 28447, SellPrice: 18000, OutputQuantity: 1, CraftTime: 45, Source: SourceManual},
		{ID: "med3", Name: "AI-2 medkit", MaterialCost: 23000, SellPrice: 5000, OutputQuantity: 1, CraftTime: 20, Source: SourceManual},
		{ID: "med4", Name: "Disposable syringe", MaterialCost: 82895, SellPrice: 72000, OutputQuantity: 1, CraftTime: 82, Source: SourceManual},
		{ID: "med5", Name: "Morphine injector", MaterialCost: 46799, SellPrice: 10000, OutputQuantity: 1, CraftTime: 67, Source: SourceManual},
		{ID: "med6", Name: "Portable defibrillator", MaterialCost: 295940, SellPrice: 133333, OutputQuantity: 1, CraftTime: 291, Source: SourceManual},
		{ID: "med7", Name: "Medical bloodset", MaterialCost: 46959, SellPrice: 16000, OutputQuantity: 1, CraftTime: 25, Source: SourceManual},
		{ID: "med8", Name: "Aluminum splint", MaterialCost: 29326, SellPrice: 26000, OutputQuantity: 1, CraftTime: 49, Source: SourceManual},
		{ID: "med9", Name: "M.U.L.E. stimulant injector", MaterialCost: 143009, SellPrice: 82000, OutputQuantity: 1, CraftTime: 84, Source: SourceManual},
		{ID: "med10", Name: "IFAK individual first aid kit", MaterialCost: 45685, SellPrice: 28220, OutputQuantity: 1, CraftTime: 46, Source: SourceManual},
		{ID: "med11", Name: "PNB (Product 16) stimulant injector", MaterialCost: 129888, SellPrice: 82000, OutputQuantity: 1, CraftTime: 58, Source: SourceManual},
		{ID: "med12", Name: "AHF1-M stimulant injector", MaterialCost: 175000, SellPrice: 52000, OutputQuantity: 1, CraftTime: 43, Source: SourceManual},
		{ID: "med13", Name: "eTG-change regenerative stimulant injector", MaterialCost: 148126, SellPrice: 70000, OutputQuantity: 1, CraftTime: 74, Source: SourceManual},
		{ID: "med14", Name: "Pile of meds", MaterialCost: 42158, SellPrice: 69999, OutputQuantity: 1, CraftTime: 44, Source: SourceManual},
		{ID: "med15", Name: "Vaseline balm", MaterialCost: 65323, SellPrice: 40000, OutputQuantity: 1, CraftTime: 50, Source: SourceManual},
		{ID: "med16", Name: "SJ1 TGLabs combat stimulant injector", MaterialCost: 373754, SellPrice: 225000, OutputQuantity: 1, CraftTime: 76, Source: SourceManual},
		{ID: "med17", Name: "2A2-(b-TG) stimulant injector", MaterialCost: 89331, SellPrice: 54000, OutputQuantity: 1, CraftTime: 74, Source: SourceManual},
		{ID: "med18", Name: "Grizzly medical kit", MaterialCost: 123778, SellPrice: 66000, OutputQuantity: 1, CraftTime: 69, Source: SourceManual},
		{ID: "med19", Name: "SJ6 TGLabs combat stimulant injector", MaterialCost: 101200, SellPrice: 178000, OutputQuantity: 1, CraftTime: 78, Source: SourceManual},
		{ID: "med20", Name: "Propital regenerative stimulant injector", MaterialCost: 161953, SellPrice: 172000, OutputQuantity: 1, CraftTime: 106, Source: SourceManual},
		{ID: "med21", Name: "Perfotoran (Blue Blood) stimulant injector", MaterialCost: 108000, SellPrice: 45000, OutputQuantity: 1, CraftTime: 69, Source: SourceManual},
		{ID: "med22", Name: "AFAK tactical individual first aid kit", MaterialCost: 21000, SellPrice: 19000, OutputQuantity: 1, CraftTime: 55, Source: SourceManual},
		{ID: "med23", Name: "Surv12 field surgical kit", MaterialCost: 89275, SellPrice: 88000, OutputQuantity: 1, CraftTime: 70, Source: SourceManual},
		{ID: "med24", Name: "Zagustin hemostatic drug injector", MaterialCost: 77000, SellPrice: 30000, OutputQuantity: 1, CraftTime: 103, Source: SourceManual},
	},
	"workbench": {
		{ID: "work1", Name: "Broken GPhone smartphone", MaterialCost: 63811, SellPrice: 10000, OutputQuantity: 1, CraftTime: 23, Source: SourceManual},
		{ID: "work2", Name: "PM 9x18PM 84-round makeshift drum magazine", MaterialCost: 69000, SellPrice: 42000, OutputQuantity: 1, CraftTime: 18, Source: SourceManual},
		{ID: "work3", Name: "Bundle of wires", MaterialCost: 59555, SellPrice: 168000, OutputQuantity: 1, CraftTime: 109, Source: SourceManual},
		{ID: "work4", Name: "Kalashnikov AK-74N 5.45x39 assault rifle", MaterialCost: 44108, SellPrice: 25000, OutputQuantity: 1, CraftTime: 75, Source: SourceManual},
		{ID: "work5", Name: "Magnet", MaterialCost: 93000, SellPrice: 37000, OutputQuantity: 1, CraftTime: 40, Source: SourceManual},
		{ID: "work6", Name: "Gunpowder \"KITE\"", MaterialCost: 28582, SellPrice: 20000, OutputQuantity: 1, CraftTime: 13, Source: SourceManual},
		{ID: "work7", Name: "Printed circuit board", MaterialCost: 29332, SellPrice: 21000, OutputQuantity: 1, CraftTime: 44, Source: SourceManual},
		{ID: "work8", Name: "Power cord", MaterialCost: 103887, SellPrice: 80000, OutputQuantity: 1, CraftTime: 32, Source: SourceManual},
		{ID: "work9", Name: "Round pliers", MaterialCost: 44000, SellPrice: 15000, OutputQuantity: 1, CraftTime: 13, Source: SourceManual},
		{ID: "work10", Name: "Weapon parts", MaterialCost: 51676, SellPrice: 65000, OutputQuantity: 1, CraftTime: 72, Source: SourceManual},
		{ID: "work11", Name: "T-shaped plug", MaterialCost: 66777, SellPrice: 51000, OutputQuantity: 1, CraftTime: 52, Source: SourceManual},
		{ID: "work12", Name: "Broken LCD", MaterialCost: 110000, SellPrice: 148000, OutputQuantity: 1, CraftTime: 20, Source: SourceManual},
		{ID: "work13", Name: "Zarya stun grenade", MaterialCost: 87664, SellPrice: 45000, OutputQuantity: 1, CraftTime: 71, Source: SourceManual},
		{ID: "work14", Name: "Gas analyzer", MaterialCost: 123800, SellPrice: 20000, OutputQuantity: 1, CraftTime: 101, Source: SourceManual},
		{ID: "work15", Name: "Gunpowder \"HAWK\"", MaterialCost: 50876, SellPrice: 84000, OutputQuantity: 1, CraftTime: 33, Source: SourceManual},
		{ID: "work16", Name: "Light bulb", MaterialCost: 107554, SellPrice: 32000, OutputQuantity: 1, CraftTime: 55, Source: SourceManual},
		{ID: "work17", Name: "Toolset", MaterialCost: 70109, SellPrice: 19000, OutputQuantity: 1, CraftTime: 7, Source: SourceManual},
		{ID: "work18", Name: "Piece of plexiglass", MaterialCost: 63000, SellPrice: 40000, OutputQuantity: 1, CraftTime: 23, Source: SourceManual},
		{ID: "work19", Name: "RGD-5 hand grenade", MaterialCost: 79000, SellPrice: 78000, OutputQuantity: 1, CraftTime: 282, Source: SourceManual},
		{ID: "work20", Name: "Capacitors", MaterialCost: 84500, SellPrice: 120000, OutputQuantity: 1, CraftTime: 114, Source: SourceManual},
		{ID: "work21", Name: "Kalashnikov AKM 7.62x39 assault rifle", MaterialCost: 42676, SellPrice: 41000, OutputQuantity: 1, CraftTime: 5, Source: SourceManual},
		{ID: "work22", Name: "Hand drill", MaterialCost: 179000, SellPrice: 180000, OutputQuantity: 1, CraftTime: 138, Source: SourceManual},
		{ID: "work23", Name: "Car battery", MaterialCost: 228685, SellPrice: 210000, OutputQuantity: 1, CraftTime: 154, Source: SourceManual},
		{ID: "work24", Name: "VOG-17 Khattabka improvised hand grenade", MaterialCost: 92777, SellPrice: 96000, OutputQuantity: 1, CraftTime: 74, Source: SourceManual},
		{ID: "work25", Name: "NIXXOR lens", MaterialCost: 94000, SellPrice: 66000, OutputQuantity: 1, CraftTime: 140, Source: SourceManual},
		{ID: "work26", Name: "Working LCD", MaterialCost: 104000, SellPrice: 25000, OutputQuantity: 1, CraftTime: 29, Source: SourceManual},
		{ID: "work27", Name: "GreenBat lithium battery", MaterialCost: 152533, SellPrice: 138000, OutputQuantity: 1, CraftTime: 133, Source: SourceManual},
		{ID: "work28", Name: "Spark plug", MaterialCost: 108000, SellPrice: 18000, OutputQuantity: 1, CraftTime: 107, Source: SourceManual},
		{ID: "work29", Name: "Kalashnikov AK-74M 5.45x39 assault rifle", MaterialCost: 38887, SellPrice: 20000, OutputQuantity: 1, CraftTime: 77, Source: SourceManual},
		{ID: "work30", Name: "Electric motor", MaterialCost: 147428, SellPrice: 91000, OutputQuantity: 1, CraftTime: 74, Source: SourceManual},
		{ID: "work31", Name: "Geiger-Muller counter", MaterialCost: 93387, SellPrice: 17000, OutputQuantity: 1, CraftTime: 84, Source: SourceManual},
		{ID: "work32", Name: "Can of thermite", MaterialCost: 318300, SellPrice: 262000, OutputQuantity: 1, CraftTime: 154, Source: SourceManual},
		{ID: "work33", Name: "Gunpowder \"EAGLE\"", MaterialCost: 33000, SellPrice: 90000, OutputQuantity: 1, CraftTime: 90, Source: SourceManual},
		{ID: "work34", Name: "Bulbex cable cutter", MaterialCost: 366774, SellPrice: 64000, OutputQuantity: 1, CraftTime: 385, Source: SourceManual},
		{ID: "work35", Name: "Rechargeable battery", MaterialCost: 36000, SellPrice: 20000, OutputQuantity: 1, CraftTime: 67, Source: SourceManual},
		{ID: "work36", Name: "OFZ 30x165mm shell", MaterialCost: 437111, SellPrice: 70000, OutputQuantity: 1, CraftTime: 601, Source: SourceManual},
	},
	"lavatory": {
		{ID: "lav1", Name: "Schaman shampoo", MaterialCost: 28000, SellPrice: 30000, OutputQuantity: 1, CraftTime: 32, Source: SourceManual},
		{ID: "lav2", Name: "Toilet paper", MaterialCost: 43000, SellPrice: 34000, OutputQuantity: 1, CraftTime: 24, Source: SourceManual},
		{ID: "lav3", Name: "BNTI Module-3M body armor", MaterialCost: 18000, SellPrice: 16000, OutputQuantity: 1, CraftTime: 50, Source: SourceManual},
		{ID: "lav4", Name: "Gas mask air filter", MaterialCost: 89000, SellPrice: 20000, OutputQuantity: 1, CraftTime: 1, Source: SourceManual},
		{ID: "lav5", Name: "BNTI Zhuk body armor", MaterialCost: 31000, SellPrice: 16000, OutputQuantity: 1, CraftTime: 61, Source: SourceManual},
		{ID: "lav6", Name: "Soap", MaterialCost: 31000, SellPrice: 42000, OutputQuantity: 1, CraftTime: 46, Source: SourceManual},
		{ID: "lav7", Name: "Army bandage", MaterialCost: 32000, SellPrice: 17000, OutputQuantity: 1, CraftTime: 15, Source: SourceManual},
		{ID: "lav8", Name: "Cordura polyamide fabric", MaterialCost: 36320, SellPrice: 16000, OutputQuantity: 1, CraftTime: 44, Source: SourceManual},
		{ID: "lav9", Name: "6B47 Ratnik-BSh helmet (EMR cover)", MaterialCost: 54000, SellPrice: 21000, OutputQuantity: 1, CraftTime: 18, Source: SourceManual},
		{ID: "lav10", Name: "Aramid fiber fabric", MaterialCost: 40646, SellPrice: 30000, OutputQuantity: 1, CraftTime: 30, Source: SourceManual},
		{ID: "lav11", Name: "Ripstop fabric", MaterialCost: 36000, SellPrice: 15000, OutputQuantity: 1, CraftTime: 33, Source: SourceManual},
		{ID: "lav12", Name: "Aseptic bandage", MaterialCost: 18000, SellPrice: 10470, OutputQuantity: 1, CraftTime: 29, Source: SourceManual},
		{ID: "lav13", Name: "6B23-2 body armor (Mountain Flora)", MaterialCost: 39000, SellPrice: 22000, OutputQuantity: 1, CraftTime: 107, Source: SourceManual},
		{ID: "lav14", Name: "Corrugated hose", MaterialCost: 183499, SellPrice: 54000, OutputQuantity: 1, CraftTime: 186, Source: SourceManual},
		{ID: "lav15", Name: "Scav backpack", MaterialCost: 43000, SellPrice: 15000, OutputQuantity: 1, CraftTime: 18, Source: SourceManual},
		{ID: "lav16", Name: "Fleece fabric", MaterialCost: 28000, SellPrice: 13000, OutputQuantity: 1, CraftTime: 40, Source: SourceManual},
		{ID: "lav17", Name: "BlackRock chest rig (Gray)", MaterialCost: 55000, SellPrice: 36000, OutputQuantity: 1, CraftTime: 55, Source: SourceManual},
		{ID: "lav18", Name: "BlackHawk! Commando chest harness (Black)", MaterialCost: 49000, SellPrice: 20000, OutputQuantity: 1, CraftTime: 43, Source: SourceManual},
		{ID: "lav19", Name: "First Spear Strandhogg plate carrier (Ranger Green)", MaterialCost: 64000, SellPrice: 21000, OutputQuantity: 1, CraftTime: 30, Source: SourceManual},
		{ID: "lav20", Name: "Water filter", MaterialCost: 432665, SellPrice: 320000, OutputQuantity: 1, CraftTime: 123, Source: SourceManual},
		{ID: "lav21", Name: "Clin window cleaner", MaterialCost: 51765, SellPrice: 9000, OutputQuantity: 1, CraftTime: 37, Source: SourceManual},
		{ID: "lav22", Name: "Grenade case", MaterialCost: 558000, SellPrice: 288000, OutputQuantity: 1, CraftTime: 462, Source: SourceManual},
		{ID: "lav23", Name: "Ars Arma A18 Skanda plate carrier (MultiCam)", MaterialCost: 120000, SellPrice: 40000, OutputQuantity: 1, CraftTime: 138, Source: SourceManual},
		{ID: "lav24", Name: "Ox bleach", MaterialCost: 30000, SellPrice: 18000, OutputQuantity: 1, CraftTime: 35, Source: SourceManual},
		{ID: "lav25", Name: "AK-74 5.45x39 6L31 60-round magazine", MaterialCost: 55000, SellPrice: 10000, OutputQuantity: 1, CraftTime: 77, Source: SourceManual},
		{ID: "lav26", Name: "Expeditionary fuel tank", MaterialCost: 87000, SellPrice: 64000, OutputQuantity: 1, CraftTime: 57, Source: SourceManual},
		{ID: "lav27", Name: "Lucky Scav Junk box", MaterialCost: 1125000, SellPrice: 1106138, OutputQuantity: 1, CraftTime: 277, Source: SourceManual},
		{ID: "lav28", Name: "Eberlestock F5 Switchblade backpack (Dry Earth)", MaterialCost: 57000, SellPrice: 40000, OutputQuantity: 1, CraftTime: 38, Source: SourceManual},
	},
	"water-collector": {
		{ID: "water1", Name: "Emergency Water Ration", MaterialCost: 51000, SellPrice: 30000, OutputQuantity: 1, CraftTime: 27, Source: SourceManual},
		{ID: "water2", Name: "Aquamari water bottle with filter", MaterialCost: 81000, SellPrice: 95000, OutputQuantity: 1, CraftTime: 55, Source: SourceManual},
	},
	"nutrition-unit": {
		{ID: "food1", Name: "Salty Dog beef sausage", MaterialCost: 61000, SellPrice: 60000, OutputQuantity: 1, CraftTime: 30, Source: SourceManual},
		{ID: "food2", Name: "Can of Max Energy energy drink", MaterialCost: 107000, SellPrice: 64000, OutputQuantity: 1, CraftTime: 100, Source: SourceManual},
		{ID: "food3", Name: "Bottle of Norvinsk Yadreniy premium kvass (0.6L)", MaterialCost: 46000, SellPrice: 40000, OutputQuantity: 1, CraftTime: 58, Source: SourceManual},
		{ID: "food4", Name: "MRE ration pack", MaterialCost: 65000, SellPrice: 24000, OutputQuantity: 1, CraftTime: 37, Source: SourceManual},
		{ID: "food5", Name: "Iskra ration pack", MaterialCost: 57000, SellPrice: 40000, OutputQuantity: 1, CraftTime: 44, Source: SourceManual},
		{ID: "food6", Name: "Can of beef stew (Small)", MaterialCost: 54000, SellPrice: 36000, OutputQuantity: 1, CraftTime: 72, Source: SourceManual},
		{ID: "food7", Name: "Can of Majaica coffee beans", MaterialCost: 53000, SellPrice: 64000, OutputQuantity: 1, CraftTime: 41, Source: SourceManual},
		{ID: "food8", Name: "Pack of sugar", MaterialCost: 44000, SellPrice: 42000, OutputQuantity: 1, CraftTime: 77, Source: SourceManual},
		{ID: "food9", Name: "Slickers chocolate bar", MaterialCost: 41000, SellPrice: 8000, OutputQuantity: 1, CraftTime: 19, Source: SourceManual},
		{ID: "food10", Name: "Wilston cigarettes", MaterialCost: 17000, SellPrice: 25000, OutputQuantity: 1, CraftTime: 94, Source: SourceManual},
		{ID: "food11", Name: "Can of condensed milk", MaterialCost: 55000, SellPrice: 51000, OutputQuantity: 1, CraftTime: 75, Source: SourceManual},
		{ID: "food12", Name: "Pack of Russian Army pineapple juice", MaterialCost: 49000, SellPrice: 42000, OutputQuantity: 1, CraftTime: 65, Source: SourceManual},
		{ID: "food13", Name: "Bottle of Dan Jackiel whiskey", MaterialCost: 128000, SellPrice: 96000, OutputQuantity: 1, CraftTime: 98, Source: SourceManual},
		{ID: "food14", Name: "Bottle of Pevko Light beer", MaterialCost: 250000, SellPrice: 230000, OutputQuantity: 1, CraftTime: 555, Source: SourceManual},
		{ID: "food15", Name: "Can of Hot Rod energy drink", MaterialCost: 259000, SellPrice: 180000, OutputQuantity: 1, CraftTime: 666, Source: SourceManual},
		{ID: "food16", Name: "Bottle of Tarkovskaya vodka", MaterialCost: 241000, SellPrice: 210000, OutputQuantity: 1, CraftTime: 88, Source: SourceManual},
		{ID: "food17", Name: "Bottle of water (0.6L)", MaterialCost: 141000, SellPrice: 120000, OutputQuantity: 1, CraftTime: 102, Source: SourceManual},
	},
	"intelligence-center": {
		{ID: "intel1", Name: "TerraGroup Labs access keycard", MaterialCost: 435000, SellPrice: 408000, OutputQuantity: 1, CraftTime: 37, Source: SourceManual},
		{ID: "intel2", Name: "Secure magnetic tape cassette", MaterialCost: 183000, SellPrice: 88000, OutputQuantity: 1, CraftTime: 222, Source: SourceManual},
		{ID: "intel3", Name: "SAS drive", MaterialCost: 166000, SellPrice: 70000, OutputQuantity: 1, CraftTime: 166, Source: SourceManual},
		{ID: "intel4", Name: "Secure flash drive", MaterialCost: 115000, SellPrice: 54000, OutputQuantity: 1, CraftTime: 444, Source: SourceManual},
		{ID: "intel5", Name: "Topographic survey maps", MaterialCost: 103000, SellPrice: 34000, OutputQuantity: 1, CraftTime: 111, Source: SourceManual},
		{ID: "intel6", Name: "TerraGroup \"Blue Folders\" materials", MaterialCost: 868000, SellPrice: 400000, OutputQuantity: 1, CraftTime: 610, Source: SourceManual},
		{ID: "intel7", Name: "Object #11SR keycard", MaterialCost: 409000, SellPrice: 79000, OutputQuantity: 1, CraftTime: 3638, Source: SourceManual},
	},
}

// DefaultCatalog returns a fresh catalog seeded with the built-in crafts,
// each station sorted by descending profit/hour.
func DefaultCatalog() *Catalog {
	c := FromMap(defaultCrafts)
	for id := range c.crafts {
		SortByProfitPerHourDesc(c.crafts[id])
	}
	return c
}
