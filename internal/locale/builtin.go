package locale

// builtinTeams maps every NBA franchise display name to its Chinese name.
var builtinTeams = map[string]string{
	"Atlanta Hawks":          "老鹰",
	"Boston Celtics":         "凯尔特人",
	"Brooklyn Nets":          "篮网",
	"Charlotte Hornets":      "黄蜂",
	"Chicago Bulls":          "公牛",
	"Cleveland Cavaliers":    "骑士",
	"Dallas Mavericks":       "独行侠",
	"Denver Nuggets":         "掘金",
	"Detroit Pistons":        "活塞",
	"Golden State Warriors":  "勇士",
	"Houston Rockets":        "火箭",
	"Indiana Pacers":         "步行者",
	"LA Clippers":            "快船",
	"Los Angeles Lakers":     "湖人",
	"Memphis Grizzlies":      "灰熊",
	"Miami Heat":             "热火",
	"Milwaukee Bucks":        "雄鹿",
	"Minnesota Timberwolves": "森林狼",
	"New Orleans Pelicans":   "鹈鹕",
	"New York Knicks":        "尼克斯",
	"Oklahoma City Thunder":  "雷霆",
	"Orlando Magic":          "魔术",
	"Philadelphia 76ers":     "76人",
	"Phoenix Suns":           "太阳",
	"Portland Trail Blazers": "开拓者",
	"Sacramento Kings":       "国王",
	"San Antonio Spurs":      "马刺",
	"Toronto Raptors":        "猛龙",
	"Utah Jazz":              "爵士",
	"Washington Wizards":     "奇才",
}

// builtinPlayers is the shipped player table. It covers rotation players;
// deep bench and new signings come in through the players.json overlay,
// curated from the unresolved-names diagnostic.
var builtinPlayers = map[string]string{
	"LeBron James":            "勒布朗·詹姆斯",
	"Stephen Curry":           "斯蒂芬·库里",
	"Kevin Durant":            "凯文·杜兰特",
	"Giannis Antetokounmpo":   "扬尼斯·阿德托昆博",
	"Joel Embiid":             "乔尔·恩比德",
	"Nikola Jokic":            "尼古拉·约基奇",
	"Luka Doncic":             "卢卡·东契奇",
	"Jayson Tatum":            "杰森·塔图姆",
	"Jaylen Brown":            "杰伦·布朗",
	"Ja Morant":               "贾·莫兰特",
	"Devin Booker":            "德文·布克",
	"Damian Lillard":          "达米安·利拉德",
	"Jimmy Butler":            "吉米·巴特勒",
	"Kawhi Leonard":           "科怀·伦纳德",
	"Anthony Davis":           "安东尼·戴维斯",
	"Kyrie Irving":            "凯里·欧文",
	"James Harden":            "詹姆斯·哈登",
	"Russell Westbrook":       "拉塞尔·威斯布鲁克",
	"Chris Paul":              "克里斯·保罗",
	"Klay Thompson":           "克莱·汤普森",
	"Draymond Green":          "德雷蒙德·格林",
	"Paul George":             "保罗·乔治",
	"Zion Williamson":         "锡安·威廉森",
	"Trae Young":              "特雷·杨",
	"Donovan Mitchell":        "多诺万·米切尔",
	"Darius Garland":          "达柳斯·加兰",
	"De'Aaron Fox":            "德阿龙·福克斯",
	"Shai Gilgeous-Alexander": "谢伊·吉尔杰斯-亚历山大",
	"Anthony Edwards":         "安东尼·爱德华兹",
	"LaMelo Ball":             "拉梅洛·鲍尔",
	"Victor Wembanyama":       "维克托·文班亚马",
	"Paolo Banchero":          "保罗·班切罗",
	"Cade Cunningham":         "凯德·坎宁安",
	"Jalen Suggs":             "杰伦·萨格斯",
	"Evan Mobley":             "埃文·莫布利",
	"Scottie Barnes":          "斯科蒂·巴恩斯",
	"Franz Wagner":            "弗朗茨·瓦格纳",
	"Chet Holmgren":           "切特·霍姆格伦",
	"Jalen Williams":          "杰伦·威廉姆斯 (雷霆)",
	"Brandon Ingram":          "布兰登·英格拉姆",
	"DeMar DeRozan":           "德玛尔·德罗赞",
	"Zach LaVine":             "扎克·拉文",
	"Nikola Vucevic":          "尼古拉·武切维奇",
	"Karl-Anthony Towns":      "卡尔-安东尼·唐斯",
	"Rudy Gobert":             "鲁迪·戈贝尔",
	"Mike Conley":             "迈克·康利",
	"Jrue Holiday":            "朱·霍勒迪",
	"Bam Adebayo":             "巴姆·阿德巴约",
	"Tyler Herro":             "泰勒·希罗",
	"CJ McCollum":             "CJ·麦科勒姆",
	"Herbert Jones":           "赫伯特·琼斯",
	"Jose Alvarado":           "何塞·阿尔瓦拉多",
	"Larry Nance Jr.":         "小拉里·南斯",
	"Dyson Daniels":           "戴森·丹尼尔斯",
	"Trey Murphy III":         "特雷·墨菲三世",
	"Alex Caruso":             "亚历克斯·卡鲁索",
	"Coby White":              "科比·怀特",
	"Ayo Dosunmu":             "阿约·多孙穆",
	"Jaden McDaniels":         "杰登·麦克丹尼尔斯",
	"Nickeil Alexander-Walker": "纳吉尔·亚历山大-沃克",
	"Naz Reid":                "纳兹·里德",
	"Dalton Knecht":           "道尔顿·克内希特",
	"Bronny James":            "布朗尼·詹姆斯",
	"Austin Reaves":           "奥斯汀·里夫斯",
	"D'Angelo Russell":        "丹吉洛·拉塞尔",
	"Rui Hachimura":           "八村垒",
	"Jarred Vanderbilt":       "贾里德·范德比尔特",
	"Gabe Vincent":            "加布·文森特",
	"Jaxson Hayes":            "杰克逊·海斯",
	"Andrew Wiggins":          "安德鲁·威金斯",
	"Gary Payton II":          "小加里·佩顿",
	"Moses Moody":             "摩西·穆迪",
	"Brandin Podziemski":      "布兰丁·波杰姆斯基",
	"Trayce Jackson-Davis":    "特雷斯·杰克逊-戴维斯",
	"Kristaps Porzingis":      "克里斯塔普斯·波尔津吉斯",
	"Derrick White":           "德里克·怀特",
	"Al Horford":              "艾尔·霍福德",
	"Sam Hauser":              "萨姆·豪瑟",
	"Payton Pritchard":        "佩顿·普里查德",
	"Luke Kornet":             "卢克·科内特",
	"Neemias Queta":           "尼米亚斯·奎塔",
	"Jamal Murray":            "贾马尔·穆雷",
	"Michael Porter Jr.":      "小迈克尔·波特",
	"Aaron Gordon":            "阿隆·戈登",
	"Kentavious Caldwell-Pope": "肯塔维奥斯·考德威尔-波普",
	"Reggie Jackson":          "雷吉·杰克逊",
	"Christian Braun":         "克里斯蒂安·布劳恩",
	"Peyton Watson":           "佩顿·沃森",
	"Julian Strawther":        "朱利安·斯特劳瑟",
	"P.J. Washington":         "P.J.华盛顿",
	"Daniel Gafford":          "丹尼尔·加福德",
	"Derrick Jones Jr.":       "小德里克·琼斯",
	"Dereck Lively II":        "德里克·利夫利二世",
	"Maxi Kleber":             "马克西·克勒贝尔",
	"Dante Exum":              "丹特·埃克萨姆",
	"Jaden Hardy":             "杰登·哈迪",
	"Dwight Powell":           "德怀特·鲍威尔",
	"Brook Lopez":             "布鲁克·洛佩斯",
	"Bobby Portis":            "鲍比·波蒂斯",
	"Khris Middleton":         "克里斯·米德尔顿",
	"Pat Connaughton":         "帕特·康诺顿",
	"Andre Jackson Jr.":       "小安德烈·杰克逊",
	"Thanasis Antetokounmpo":  "萨纳西斯·阿德托昆博",
	"Tyrese Maxey":            "泰瑞斯·马克西",
	"Tobias Harris":           "托拜厄斯·哈里斯",
	"Kelly Oubre Jr.":         "小凯利·乌布雷",
	"Nicolas Batum":           "尼古拉斯·巴图姆",
	"Bradley Beal":            "布拉德利·比尔",
	"Jusuf Nurkic":            "尤素夫·努尔基奇",
	"Grayson Allen":           "格雷森·艾伦",
	"Royce O'Neale":           "罗伊斯·奥尼尔",
	"Bol Bol":                 "波尔·波尔",
	"Josh Giddey":             "约什·吉迪",
	"Isaiah Joe":              "以赛亚·乔",
	"Kenrich Williams":        "肯里奇·威廉姆斯",
	"Aaron Wiggins":           "阿隆·威金斯",
	"Cason Wallace":           "卡森·华莱士",
	"Jaylin Williams":         "杰林·威廉姆斯",
	"Norman Powell":           "诺曼·鲍威尔",
	"Ivica Zubac":             "伊维察·祖巴茨",
	"Terance Mann":            "特伦斯·曼恩",
	"Amir Coffey":             "阿米尔·科菲",
	"Kris Dunn":               "克里斯·邓恩",
	"Dejounte Murray":         "德章泰·穆雷",
	"De'Andre Hunter":         "德安德烈·亨特",
	"Onyeka Okongwu":          "奥涅卡·奥孔古",
	"Clint Capela":            "克林特·卡佩拉",
	"Bogdan Bogdanovic":       "博格丹·博格达诺维奇",
	"Jalen Johnson":           "杰伦·约翰逊",
	"Malik Monk":              "马利克·蒙克",
	"Domantas Sabonis":        "多曼塔斯·萨博尼斯",
	"Keegan Murray":           "基根·穆雷",
	"Harrison Barnes":         "哈里森·巴恩斯",
	"Jalen Green":             "杰伦·格林",
	"Alperen Sengun":          "阿尔佩伦·申京",
	"Jabari Smith Jr.":        "小贾巴里·史密斯",
	"Fred VanVleet":           "弗雷德·范弗利特",
	"Dillon Brooks":           "狄龙·布鲁克斯",
	"Tari Eason":              "塔里·伊森",
	"Amen Thompson":           "阿门·汤普森",
	"Cam Whitmore":            "卡姆·惠特莫尔",
	"OG Anunoby":              "OG·阿努诺比",
	"Julius Randle":           "朱利叶斯·兰德尔",
	"Jalen Brunson":           "杰伦·布伦森",
	"Donte DiVincenzo":        "唐特·迪文琴佐",
	"Mitchell Robinson":       "米切尔·罗宾逊",
	"Josh Hart":               "约什·哈特",
	"Isaiah Stewart":          "以赛亚·斯图尔特",
	"Ausar Thompson":          "奥萨尔·汤普森",
	"Jaden Ivey":              "杰登·艾维",
	"Jalen Duren":             "杰伦·杜伦",
	"Kyle Kuzma":              "凯尔·库兹马",
	"Deni Avdija":             "德尼·阿夫迪亚",
	"Corey Kispert":           "科里·基斯珀特",
	"Bilal Coulibaly":         "比拉尔·库利巴利",
	"Jordan Poole":            "乔丹·普尔",
	"Jonathan Kuminga":        "乔纳森·库明加",
	"Stephon Castle":          "斯蒂芬·卡斯尔",
	"Alex Sarr":               "亚历克斯·萨尔",
	"Lauri Markkanen":         "劳里·马尔卡宁",
	"Jordan Clarkson":         "乔丹·克拉克森",
	"Kelly Olynyk":            "凯利·奥利尼克",
	"Walker Kessler":          "沃克·凯斯勒",
	"Collin Sexton":           "科林·塞克斯顿",
	"Keyonte George":          "基扬特·乔治",
	"A.J. Green":              "AJ·格林",
	"Aaron Nesmith":           "阿龙·内史密斯",
	"Bennedict Mathurin":      "本尼迪克特·马瑟林",
	"Tyrese Haliburton":       "泰瑞斯·哈利伯顿",
	"Myles Turner":            "迈尔斯·特纳",
	"Obi Toppin":              "奥比·托平",
	"T.J. McConnell":          "T.J.麦康奈尔",
	"Ben Sheppard":            "本·谢泼德",
	"Buddy Hield":             "巴迪·希尔德",
	"Pascal Siakam":           "帕斯卡尔·西亚卡姆",
	"RJ Barrett":              "RJ·巴雷特",
	"Robert Williams III":     "罗伯特·威廉斯三世",
	"Lonnie Walker IV":        "朗尼·沃克四世",
	"Tim Hardaway Jr.":        "小蒂姆·哈达威",
	"Wendell Carter Jr.":      "小温德尔·卡特",
	"Jakob Poeltl":            "雅各布·珀尔特尔",
	"Jeremy Sochan":           "杰里米·索汉",
	"Jonas Valanciunas":       "约纳斯·瓦兰丘纳斯",
	"Steven Adams":            "史蒂文·亚当斯",
	"Tre Jones":               "特雷·琼斯",
	"Desmond Bane":            "戴斯蒙德·贝恩",
	"Jaren Jackson Jr.":       "小贾伦·杰克逊",
	"Marcus Smart":            "马库斯·斯玛特",
	"Santi Aldama":            "桑蒂·阿尔达马",
	"John Konchar":            "约翰·康查尔",
	"Jaylen Wells":            "杰伦·威尔斯",
	"GG Jackson":              "GG·杰克逊",
	"Vince Williams Jr.":      "小文斯·威廉姆斯",
	"Duncan Robinson":         "邓肯·罗宾逊",
	"Nic Claxton":             "尼古拉斯·克拉克斯顿",
	"Mikal Bridges":           "米卡尔·布里奇斯",
	"Cam Johnson":             "卡梅隆·约翰逊",
	"Cam Thomas":              "卡姆·托马斯",
	"Dennis Schroder":         "丹尼斯·施罗德",
	"Spencer Dinwiddie":       "斯潘塞·丁威迪",
	"Day'Ron Sharpe":          "戴龙·夏普",
	"Dorian Finney-Smith":     "多里安·芬尼-史密斯",
	"Seth Curry":              "塞思·库里",
	"Ben Simmons":             "本·西蒙斯",
	"Anfernee Simons":         "安芬尼·西蒙斯",
	"Jerami Grant":            "杰拉米·格兰特",
	"Deandre Ayton":           "德安德烈·艾顿",
	"Scoot Henderson":         "斯库特·亨德森",
	"Shaedon Sharpe":          "谢登·夏普",
	"Toumani Camara":          "图马尼·卡马拉",
	"Donovan Clingan":         "多诺万·克林根",
	"Matas Buzelis":           "马塔斯·布泽利斯",
	"Reed Sheppard":           "里德·谢泼德",
	"Zach Edey":               "扎克·埃迪",
	"Zaccharie Risacher":      "扎卡里·里萨谢",
	"Brandon Miller":          "布兰登·米勒",
	"Miles Bridges":           "迈尔斯·布里奇斯",
	"Mark Williams":           "马克·威廉姆斯",
	"Grant Williams":          "格兰特·威廉姆斯",
	"Patrick Williams":        "帕特里克·威廉姆斯",
	"Moritz Wagner":           "莫里茨·瓦格纳",
	"Jarrett Allen":           "贾勒特·阿伦",
	"Caris LeVert":            "卡里斯·勒韦尔",
	"Isaac Okoro":             "艾萨克·奥科罗",
	"Max Strus":               "马克斯·斯特鲁斯",
	"Georges Niang":           "乔治·尼昂",
	"Craig Porter Jr.":        "小克雷格·波特",
	"Sam Merrill":             "萨姆·梅里尔",
	"Andre Drummond":          "安德烈·德拉蒙德",
	"Kevin Porter Jr.":        "小凯文·波特",
	"Kevon Looney":            "凯文·卢尼",
	"Kevin Huerter":           "凯文·许尔特",
	"Keon Ellis":              "基翁·埃利斯",
	"Kyle Lowry":              "凯尔·洛瑞",
	"Lonzo Ball":              "朗佐·鲍尔",
	"Gradey Dick":             "格雷迪·迪克",
	"Jamal Shead":             "贾马尔·谢德",
	"Gary Trent Jr.":          "小加里·特伦特",
	"Yuta Watanabe":           "渡边雄太",
	"Yang Hansen":             "杨瀚森",
	"Terrence Shannon Jr.":    "小特伦斯·香农",
	"Nick Smith Jr.":          "小尼克·史密斯",
	"Tristan Thompson":        "特里斯坦·汤普森",
	"Luguentz Dort":           "吕冈茨·多尔特",
	"Kyle Anderson":           "凯尔·安德森",
	"Malik Beasley":           "马利克·比斯利",
	"Taurean Prince":          "托里恩·普林斯",
	"Thomas Bryant":           "托马斯·布莱恩特",
	"Mason Plumlee":           "梅森·普拉姆利",
	"Tyus Jones":              "泰厄斯·琼斯",
	"Monte Morris":            "蒙特·莫里斯",
	"Delon Wright":            "德隆·赖特",
	"Precious Achiuwa":        "普雷舍斯·阿丘瓦",
	"Miles McBride":           "迈尔斯·麦克布莱德",
	"Jericho Sims":            "杰里乔·西姆斯",
	"Landry Shamet":           "兰德里·沙梅特",
	"Jeff Dowtin":             "杰夫·道廷",
	"Mac McClung":             "麦克·麦克朗",
	"Jevon Carter":            "杰冯·卡特",
	"Dalen Terry":             "达伦·特里",
	"Julian Phillips":         "朱利安·菲利普斯",
	"Talen Horton-Tucker":     "塔伦·霍顿-塔克",
	"Kendrick Nunn":           "肯德里克·努恩",
	"Eric Gordon":             "埃里克·戈登",
	"Jared McCain":            "贾里德·麦凯恩",
	"Adem Bona":               "阿代姆·博纳",
	"Caleb Martin":            "凯莱布·马丁",
	"Cody Martin":             "科迪·马丁",
	"Ryan Dunn":               "瑞安·邓恩",
	"Oso Ighodaro":            "奥索·伊戈达罗",
	"Pelle Larsson":           "佩勒·拉尔森",
	"Jaime Jaquez Jr.":        "小海梅·哈克斯",
	"Kel'el Ware":             "凯尔·威尔",
	"Haywood Highsmith":       "海伍德·海史密斯",
	"Terry Rozier":            "特里·罗齐尔",
	"Josh Okogie":             "约什·奥科吉",
	"Yves Missi":              "伊夫·米西",
	"Jordan Hawkins":          "乔丹·霍金斯",
	"Javonte Green":           "贾冯特·格林",
	"Daniel Theis":            "丹尼尔·泰斯",
	"Tidjane Salaun":          "蒂贾内·萨隆",
	"Nick Richards":           "尼克·理查兹",
	"Vasilije Micic":          "瓦西里耶·米契奇",
	"Seth Lundy":              "塞特·伦迪",
	"Trendon Watford":         "特伦登·沃特福德",
	"Simone Fontecchio":       "西蒙尼·丰泰基奥",
	"Malik Williams":          "马利克·威廉姆斯",
	"Isaiah Jackson":          "以赛亚·杰克逊",
	"Jarace Walker":           "贾雷斯·沃克",
	"Andrew Nembhard":         "安德鲁·内姆哈德",
	"Jalen Smith":             "杰伦·史密斯",
	"James Wiseman":           "詹姆斯·怀斯曼",
}
