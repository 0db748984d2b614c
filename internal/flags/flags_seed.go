package flags

import (
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/makeoo/recipe-api/internal/logger"
	"github.com/makeoo/recipe-api/internal/model"
)

// 演示数据里的教程描述结构
type seedStep struct {
	Title       string
	Description string
	Tip         string
}

type seedComment struct {
	Username string
	Content  string
	Likes    int
	Date     string
}

type seedRecipe struct {
	Title       string
	Description string
	Difficulty  string
	Minutes     int
	Category    string
	Author      string
	Likes       int
	Views       int
	Published   string
	Materials   []string
	Tools       []string
	Steps       []seedStep
	Tags        []string
	Comments    []seedComment
}

var seedCategories = []model.Category{
	{Name: "园艺", Slug: "gardening", Description: "植物与园艺相关的DIY项目", IconName: "leaf", ColorCode: "#22c55e", SortOrder: 1, IsActive: true},
	{Name: "服饰配件", Slug: "clothing-accessories", Description: "旧衣改造和饰品制作", IconName: "shirt", ColorCode: "#3b82f6", SortOrder: 2, IsActive: true},
	{Name: "家具家居", Slug: "furniture-interior", Description: "家具制作与家居设计", IconName: "home", ColorCode: "#f97316", SortOrder: 3, IsActive: true},
	{Name: "收纳整理", Slug: "storage-organization", Description: "收纳盒和整理用品的制作", IconName: "archive", ColorCode: "#6b7280", SortOrder: 4, IsActive: true},
	{Name: "灯具照明", Slug: "lighting", Description: "灯具和烛台等照明小物", IconName: "lightbulb", ColorCode: "#fbbf24", SortOrder: 5, IsActive: true},
}

var seedTagNames = []string{
	"环保", "回收利用", "新手", "进阶", "高手",
	"饮料瓶", "旧衣服", "废木料", "木工", "缝纫",
	"改造", "布袋", "置物架", "边角料", "杯垫",
	"礼物", "纸箱", "收纳", "亲子", "酒瓶",
	"蜡烛", "氛围感", "园艺", "香草", "蔬菜",
}

type seedUser struct {
	Username    string
	Email       string
	DisplayName string
	Bio         string
	Verified    bool
}

var seedUsers = []seedUser{
	{"yamada_taro", "yamada@example.com", "山田太郎", "DIY新手，正在努力更新作品！", true},
	{"sato_hanako", "sato@example.com", "佐藤花子", "擅长旧衣改造，喜欢对环境友好的DIY。", true},
	{"tanaka_kazuya", "tanaka@example.com", "田中和也", "木工师傅，教大家用废木料做家具。", true},
	{"suzuki_mika", "suzuki@example.com", "铃木美香", "手工爱好者，擅长做小物件。", false},
	{"takahashi_ichiro", "takahashi@example.com", "高桥一郎", "收纳达人，分享整理收纳的窍门。", true},
	{"nakamura_sakura", "nakamura@example.com", "中村樱", "室内设计师，提案好看又好做的DIY。", true},
}

var seedRecipes = []seedRecipe{
	{
		Title:       "饮料瓶花盆",
		Description: "利用喝完的饮料瓶做一个环保花盆，新手也能轻松完成，在家就能种菜种香草。",
		Difficulty:  model.DifficultyBeginner,
		Minutes:     30,
		Category:    "园艺",
		Author:      "山田太郎",
		Likes:       124,
		Views:       1456,
		Published:   "2024-01-15",
		Materials: []string{
			"2L饮料瓶 × 1个", "土 × 适量", "种子或幼苗 × 1份",
			"小石子或轻石 × 少许", "胶带 × 1卷", "丙烯颜料（可选）",
		},
		Tools: []string{
			"美工刀", "剪刀", "电钻（或锥子）", "直尺", "记号笔", "画笔（需要装饰时）",
		},
		Steps: []seedStep{
			{"切割瓶身", "在瓶子上方三分之一处切开，切口用砂纸打磨光滑。", "和孩子一起做时，切割环节请由大人完成。"},
			{"打排水孔", "在瓶底用电钻或锥子打5到6个孔，这是保证排水的关键一步。", "孔径3到4毫米最合适，太大土会漏出来。"},
			{"装饰（可选）", "用丙烯颜料给瓶身上色装饰，等颜料完全干透。", "配合美纹纸胶带能画出整齐的图案。"},
			{"装土播种", "瓶底铺一层小石子，倒入培养土，播种或移栽幼苗后轻轻浇水。", "建议使用种菜专用的培养土。"},
			{"养护管理", "放在光照好的地方，适度浇水，等待发芽生长。", "土干了再浇透，每天观察是成功的秘诀。"},
		},
		Tags: []string{"环保", "园艺", "新手", "回收利用", "饮料瓶", "蔬菜", "香草"},
		Comments: []seedComment{
			{"tanaka_mika", "讲解很清楚，和孩子一起做完了！种的罗勒已经能摘来做菜了。", 12, "2024-01-20"},
			{"sato_ken", "排水孔的尺寸很有参考价值，第一次失败后按建议改小就成功了。", 8, "2024-01-22"},
			{"yamamoto_sakura", "不用买花盆很省钱，想多种几种蔬菜试试！", 15, "2024-01-25"},
		},
	},
	{
		Title:       "旧衣改造布袋",
		Description: "用不穿的旧衣服做一个环保布袋，让喜欢的衣服换一种方式继续陪着你。",
		Difficulty:  model.DifficultyIntermediate,
		Minutes:     90,
		Category:    "服饰配件",
		Author:      "佐藤花子",
		Likes:       89,
		Views:       890,
		Published:   "2024-01-10",
		Materials:   []string{"旧T恤", "线", "纽扣（可选）"},
		Tools:       []string{"缝纫机", "剪刀", "珠针"},
		Steps: []seedStep{
			{"确定款式", "想好要做什么形状的袋子。", ""},
			{"制作纸样", "按照款式画出纸样。", ""},
			{"裁剪布料", "把布料按纸样裁好。", ""},
		},
		Tags: []string{"改造", "旧衣服", "布袋", "进阶"},
	},
	{
		Title:       "废木料壁挂置物架",
		Description: "用废木料做一个简洁好看的壁挂置物架，工具的用法也有详细说明。",
		Difficulty:  model.DifficultyAdvanced,
		Minutes:     180,
		Category:    "家具家居",
		Author:      "田中和也",
		Likes:       156,
		Views:       2340,
		Published:   "2024-01-05",
		Materials:   []string{"废木料", "螺丝", "L形角码", "木蜡油"},
		Tools:       []string{"锯子", "电钻", "砂纸", "卷尺"},
		Steps: []seedStep{
			{"设计", "确定置物架的尺寸并画好图。", ""},
			{"备料", "把废木料切成需要的尺寸。", ""},
			{"组装", "用L形角码固定组装。", ""},
		},
		Tags: []string{"废木料", "木工", "置物架", "高手"},
	},
	{
		Title:       "地毯边角料杯垫",
		Description: "用地毯的边角料做可爱杯垫，很快就能完成，当小礼物也很合适。",
		Difficulty:  model.DifficultyBeginner,
		Minutes:     45,
		Category:    "家具家居",
		Author:      "铃木美香",
		Likes:       67,
		Views:       567,
		Published:   "2024-01-12",
		Materials:   []string{"地毯边角料", "胶水", "剪刀"},
		Tools:       []string{"直尺", "笔"},
		Steps: []seedStep{
			{"确定尺寸", "定好杯垫的尺寸并做一个纸样。", ""},
		},
		Tags: []string{"边角料", "杯垫", "新手", "礼物"},
	},
	{
		Title:       "纸箱收纳盒",
		Description: "把纸箱改造成好看的收纳盒，适合和孩子一起动手的小项目。",
		Difficulty:  model.DifficultyIntermediate,
		Minutes:     120,
		Category:    "收纳整理",
		Author:      "高桥一郎",
		Likes:       203,
		Views:       1234,
		Published:   "2024-01-08",
		Materials:   []string{"纸箱", "装饰纸", "胶水"},
		Tools:       []string{"美工刀", "直尺"},
		Steps: []seedStep{
			{"画设计图", "先画出收纳盒的设计图。", ""},
		},
		Tags: []string{"纸箱", "收纳", "进阶", "亲子"},
	},
	{
		Title:       "红酒瓶烛台",
		Description: "把红酒瓶改造成有格调的烛台，营造氛围感正合适。",
		Difficulty:  model.DifficultyIntermediate,
		Minutes:     60,
		Category:    "灯具照明",
		Author:      "中村樱",
		Likes:       91,
		Views:       789,
		Published:   "2024-01-18",
		Materials:   []string{"红酒瓶", "蜡烛"},
		Tools:       []string{"割瓶器", "砂纸"},
		Steps: []seedStep{
			{"清洗瓶子", "把红酒瓶洗干净。", ""},
		},
		Tags: []string{"酒瓶", "蜡烛", "进阶", "氛围感"},
	},
}

// SeedDB 清空并重新写入演示数据
func SeedDB(db *gorm.DB) error {
	logger.Info("开始写入演示数据")

	// 先清子表再清主表
	tables := []interface{}{
		&model.RecipeComment{}, &model.RecipeLike{}, &model.RecipeTag{},
		&model.RecipeStep{}, &model.RecipeTool{}, &model.RecipeMaterial{},
		&model.Recipe{}, &model.Tag{}, &model.Category{}, &model.User{},
	}
	for _, table := range tables {
		if err := db.Session(&gorm.Session{AllowGlobalUpdate: true}).Delete(table).Error; err != nil {
			return fmt.Errorf("清空数据失败: %w", err)
		}
	}

	categories := make(map[string]model.Category, len(seedCategories))
	for _, c := range seedCategories {
		category := c
		if err := db.Create(&category).Error; err != nil {
			return err
		}
		categories[category.Name] = category
	}

	tags := make(map[string]model.Tag, len(seedTagNames))
	for _, name := range seedTagNames {
		tag := model.Tag{Name: name, Slug: slugify(name)}
		if err := db.Create(&tag).Error; err != nil {
			return err
		}
		tags[tag.Name] = tag
	}

	hash, err := bcrypt.GenerateFromPassword([]byte("password123"), 12)
	if err != nil {
		return err
	}

	users := make(map[string]model.User, len(seedUsers))
	for _, u := range seedUsers {
		user := model.User{
			Username:    u.Username,
			Email:       u.Email,
			Password:    string(hash),
			DisplayName: u.DisplayName,
			Bio:         u.Bio,
			IsVerified:  u.Verified,
			IsActive:    true,
		}
		if err := db.Create(&user).Error; err != nil {
			return err
		}
		users[user.DisplayName] = user
	}

	for _, r := range seedRecipes {
		if err := createSeedRecipe(db, r, categories, tags, users, string(hash)); err != nil {
			return err
		}
		logger.Info("演示教程写入完成", zap.String("title", r.Title))
	}

	logger.Info("演示数据写入完成",
		zap.Int("categories", len(seedCategories)),
		zap.Int("tags", len(seedTagNames)),
		zap.Int("users", len(seedUsers)),
		zap.Int("recipes", len(seedRecipes)))
	return nil
}

func createSeedRecipe(db *gorm.DB, r seedRecipe, categories map[string]model.Category, tags map[string]model.Tag, users map[string]model.User, passwordHash string) error {
	author, ok := users[r.Author]
	if !ok {
		return fmt.Errorf("作者不存在: %s", r.Author)
	}
	category, ok := categories[r.Category]
	if !ok {
		return fmt.Errorf("分类不存在: %s", r.Category)
	}

	publishedAt, err := time.Parse("2006-01-02", r.Published)
	if err != nil {
		return err
	}

	recipe := model.Recipe{
		Title:                r.Title,
		Slug:                 fmt.Sprintf("%s-%d", slugify(r.Title), publishedAt.UnixMilli()),
		Description:          r.Description,
		Difficulty:           r.Difficulty,
		EstimatedTimeMinutes: r.Minutes,
		CategoryID:           category.ID,
		AuthorID:             author.ID,
		Status:               model.RecipeStatusPublished,
		LikesCount:           r.Likes,
		ViewsCount:           r.Views,
		CommentsCount:        len(r.Comments),
		PublishedAt:          &publishedAt,
	}
	if err := db.Create(&recipe).Error; err != nil {
		return err
	}

	for i, name := range r.Materials {
		material := model.RecipeMaterial{RecipeID: recipe.ID, Name: name, SortOrder: i}
		if err := db.Create(&material).Error; err != nil {
			return err
		}
	}

	for i, name := range r.Tools {
		tool := model.RecipeTool{RecipeID: recipe.ID, Name: name, IsEssential: true, SortOrder: i}
		if err := db.Create(&tool).Error; err != nil {
			return err
		}
	}

	for i, s := range r.Steps {
		step := model.RecipeStep{
			RecipeID:    recipe.ID,
			StepNumber:  i + 1,
			Title:       s.Title,
			Description: s.Description,
			Tip:         s.Tip,
			SortOrder:   i,
		}
		if err := db.Create(&step).Error; err != nil {
			return err
		}
	}

	for _, name := range r.Tags {
		tag, ok := tags[name]
		if !ok {
			continue
		}
		link := model.RecipeTag{RecipeID: recipe.ID, TagID: tag.ID}
		if err := db.Create(&link).Error; err != nil {
			return err
		}
		if err := db.Model(&model.Tag{}).Where("id = ?", tag.ID).
			UpdateColumn("usage_count", gorm.Expr("usage_count + ?", 1)).Error; err != nil {
			return err
		}
	}

	for _, c := range r.Comments {
		commenter, err := findOrCreateCommenter(db, c.Username, passwordHash, users)
		if err != nil {
			return err
		}
		createdAt, err := time.Parse("2006-01-02", c.Date)
		if err != nil {
			return err
		}
		comment := model.RecipeComment{
			RecipeID:   recipe.ID,
			UserID:     commenter.ID,
			Content:    c.Content,
			LikesCount: c.Likes,
		}
		comment.CreatedAt = createdAt
		if err := db.Create(&comment).Error; err != nil {
			return err
		}
	}

	return nil
}

// findOrCreateCommenter 评论人不在种子用户里时顺手补一个账号
func findOrCreateCommenter(db *gorm.DB, username, passwordHash string, users map[string]model.User) (*model.User, error) {
	var user model.User
	err := db.Where("username = ?", username).First(&user).Error
	if err == nil {
		return &user, nil
	}
	if err != gorm.ErrRecordNotFound {
		return nil, err
	}

	user = model.User{
		Username:    username,
		Email:       username + "@example.com",
		Password:    passwordHash,
		DisplayName: username,
		IsActive:    true,
	}
	if err := db.Create(&user).Error; err != nil {
		return nil, err
	}
	users[user.DisplayName] = user
	return &user, nil
}

// slugify 中文名转成拼音不现实，保留原文并把空白换成连字符
func slugify(name string) string {
	return strings.ToLower(strings.Join(strings.Fields(name), "-"))
}
